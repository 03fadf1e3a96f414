package memory

import (
	"context"
	"sync"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type attendanceRepository struct {
	mu      sync.RWMutex
	records map[model.AttendanceID]*model.AttendanceRecord
}

func newAttendanceRepository() *attendanceRepository {
	return &attendanceRepository{
		records: make(map[model.AttendanceID]*model.AttendanceRecord),
	}
}

func copyAttendance(rec *model.AttendanceRecord) *model.AttendanceRecord {
	copied := *rec
	return &copied
}

func (r *attendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyAttendance(rec)
	if created.ID == "" {
		created.ID = model.NewAttendanceID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.records[created.ID] = created
	return copyAttendance(created), nil
}

func (r *attendanceRepository) Get(ctx context.Context, id model.AttendanceID) (*model.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "attendance record not found", goerr.V("id", id))
	}

	return copyAttendance(rec), nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]*model.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.AttendanceRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, copyAttendance(rec))
	}

	return records, nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID model.UserID) ([]*model.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*model.AttendanceRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			records = append(records, copyAttendance(rec))
		}
	}

	return records, nil
}

func (r *attendanceRepository) Update(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.records[rec.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "attendance record not found", goerr.V("id", rec.ID))
	}

	updated := copyAttendance(rec)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.records[updated.ID] = updated
	return copyAttendance(updated), nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id model.AttendanceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return goerr.Wrap(ErrNotFound, "attendance record not found", goerr.V("id", id))
	}

	delete(r.records, id)
	return nil
}
