package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/service/notify"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

// MeetingUseCase handles meeting registry operations
type MeetingUseCase struct {
	repo      interfaces.Repository
	notifier  *notify.Service
	lifecycle *LifecycleUseCase
	location  *time.Location
}

// NewMeetingUseCase creates a new MeetingUseCase
func NewMeetingUseCase(repo interfaces.Repository, notifier *notify.Service, lifecycle *LifecycleUseCase, loc *time.Location) *MeetingUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &MeetingUseCase{
		repo:      repo,
		notifier:  notifier,
		lifecycle: lifecycle,
		location:  loc,
	}
}

// Create validates and stores a new meeting. The status defaults to
// scheduled, and reminder notifications for its start time are armed.
func (uc *MeetingUseCase) Create(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error) {
	if meeting.Status == "" {
		meeting.Status = types.MeetingStatusScheduled
	}
	if err := meeting.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	created, err := uc.repo.Meeting().Create(ctx, meeting)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create meeting", goerr.V("title", meeting.Title))
	}

	if startAt, err := created.StartAt(uc.location); err == nil {
		uc.notifier.ScheduleMeetingReminders(ctx, created.ID, created.Title, startAt)
	} else {
		logging.From(ctx).Warn("skipping reminders for meeting with unresolvable start time",
			"meetingID", created.ID, "error", err.Error())
	}

	return created, nil
}

// Get retrieves a meeting by ID
func (uc *MeetingUseCase) Get(ctx context.Context, id model.MeetingID) (*model.Meeting, error) {
	meeting, err := uc.repo.Meeting().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V(MeetingIDKey, id))
	}
	return meeting, nil
}

// List retrieves meetings, optionally filtered by status
func (uc *MeetingUseCase) List(ctx context.Context, opts ...interfaces.ListMeetingOption) ([]*model.Meeting, error) {
	meetings, err := uc.repo.Meeting().List(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list meetings")
	}
	return meetings, nil
}

// Update validates and replaces a meeting. Status, summary and minutes
// are carried over from the stored document; lifecycle transitions go
// through their own operations.
func (uc *MeetingUseCase) Update(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error) {
	existing, err := uc.repo.Meeting().Get(ctx, meeting.ID)
	if err != nil {
		return nil, goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V(MeetingIDKey, meeting.ID))
	}

	meeting.Status = existing.Status
	meeting.Summary = existing.Summary
	meeting.Minutes = existing.Minutes
	meeting.CreatedAt = existing.CreatedAt

	if err := meeting.Validate(); err != nil {
		return nil, err
	}
	meeting.UpdatedAt = time.Now()

	updated, err := uc.repo.Meeting().Update(ctx, meeting)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update meeting", goerr.V(MeetingIDKey, meeting.ID))
	}
	return updated, nil
}

// Cancel transitions a scheduled meeting to cancelled. Reminders already
// armed for the meeting are not revoked and will still fire.
func (uc *MeetingUseCase) Cancel(ctx context.Context, id model.MeetingID) (*model.Meeting, error) {
	meeting, err := uc.repo.Meeting().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V(MeetingIDKey, id))
	}

	if !meeting.Status.CanTransitionTo(types.MeetingStatusCancelled) {
		return nil, goerr.Wrap(ErrInvalidTransition, "meeting cannot be cancelled",
			goerr.V(MeetingIDKey, id),
			goerr.V("status", meeting.Status),
		)
	}

	meeting.Status = types.MeetingStatusCancelled
	meeting.UpdatedAt = time.Now()

	updated, err := uc.repo.Meeting().Update(ctx, meeting)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to cancel meeting", goerr.V(MeetingIDKey, id))
	}
	return updated, nil
}

// ScheduleReminders re-arms reminder notifications for a scheduled
// meeting and returns the resulting plan. Timers armed by an earlier
// call are not revoked, so repeated calls stack reminders.
func (uc *MeetingUseCase) ScheduleReminders(ctx context.Context, id model.MeetingID) ([]notify.PlannedReminder, error) {
	meeting, err := uc.repo.Meeting().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V(MeetingIDKey, id))
	}

	if meeting.Status != types.MeetingStatusScheduled {
		return nil, goerr.Wrap(ErrMeetingNotScheduled, "reminders only apply to scheduled meetings",
			goerr.V(MeetingIDKey, id),
			goerr.V("status", meeting.Status),
		)
	}

	startAt, err := meeting.StartAt(uc.location)
	if err != nil {
		return nil, err
	}

	return uc.notifier.ScheduleMeetingReminders(ctx, meeting.ID, meeting.Title, startAt), nil
}

// Delete removes a meeting. The currently running meeting cannot be
// deleted; end it first.
func (uc *MeetingUseCase) Delete(ctx context.Context, id model.MeetingID) error {
	if activeID, ok := uc.lifecycle.ActiveMeetingID(); ok && activeID == id {
		return goerr.Wrap(ErrActiveMeetingDeletion, "end the meeting before deleting it", goerr.V(MeetingIDKey, id))
	}

	if err := uc.repo.Meeting().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V(MeetingIDKey, id))
	}
	return nil
}
