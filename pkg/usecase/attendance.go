package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
)

// AttendanceUseCase handles attendance record operations
type AttendanceUseCase struct {
	repo interfaces.Repository
}

// NewAttendanceUseCase creates a new AttendanceUseCase
func NewAttendanceUseCase(repo interfaces.Repository) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo}
}

func (uc *AttendanceUseCase) Create(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Attendance().Create(ctx, rec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create attendance record", goerr.V(UserIDKey, rec.UserID))
	}
	return created, nil
}

func (uc *AttendanceUseCase) Get(ctx context.Context, id model.AttendanceID) (*model.AttendanceRecord, error) {
	rec, err := uc.repo.Attendance().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAttendanceNotFound, "attendance record not found", goerr.V("attendance_id", id))
	}
	return rec, nil
}

func (uc *AttendanceUseCase) List(ctx context.Context) ([]*model.AttendanceRecord, error) {
	recs, err := uc.repo.Attendance().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list attendance records")
	}
	return recs, nil
}

// ListByUser returns a user's attendance history
func (uc *AttendanceUseCase) ListByUser(ctx context.Context, userID model.UserID) ([]*model.AttendanceRecord, error) {
	recs, err := uc.repo.Attendance().ListByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user attendance", goerr.V(UserIDKey, userID))
	}
	return recs, nil
}

func (uc *AttendanceUseCase) Update(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Attendance().Update(ctx, rec)
	if err != nil {
		return nil, goerr.Wrap(ErrAttendanceNotFound, "attendance record not found", goerr.V("attendance_id", rec.ID))
	}
	return updated, nil
}

func (uc *AttendanceUseCase) Delete(ctx context.Context, id model.AttendanceID) error {
	if err := uc.repo.Attendance().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrAttendanceNotFound, "attendance record not found", goerr.V("attendance_id", id))
	}
	return nil
}
