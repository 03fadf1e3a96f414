package memory

import (
	"context"
	"sync"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type meetingRepository struct {
	mu       sync.RWMutex
	meetings map[model.MeetingID]*model.Meeting
}

func newMeetingRepository() *meetingRepository {
	return &meetingRepository{
		meetings: make(map[model.MeetingID]*model.Meeting),
	}
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copySummary(s *model.Summary) *model.Summary {
	if s == nil {
		return nil
	}
	copied := *s
	copied.KeyPoints = copyStrings(s.KeyPoints)
	copied.ActionItems = copyStrings(s.ActionItems)
	copied.Decisions = copyStrings(s.Decisions)
	copied.Participants = copyStrings(s.Participants)
	return &copied
}

func copyMinutes(m *model.MinutesOfMeeting) *model.MinutesOfMeeting {
	if m == nil {
		return nil
	}
	copied := *m
	copied.Attendees = copyStrings(m.Attendees)
	copied.Agenda = copyStrings(m.Agenda)
	copied.KeyDiscussions = copyStrings(m.KeyDiscussions)
	copied.Decisions = copyStrings(m.Decisions)
	copied.NextSteps = copyStrings(m.NextSteps)
	copied.Attachments = copyStrings(m.Attachments)
	if m.ActionItems != nil {
		copied.ActionItems = make([]model.ActionItem, len(m.ActionItems))
		copy(copied.ActionItems, m.ActionItems)
	}
	return &copied
}

// copyMeeting creates a deep copy of a meeting
func copyMeeting(m *model.Meeting) *model.Meeting {
	copied := *m
	copied.Attendees = copyStrings(m.Attendees)
	copied.Attachments = copyStrings(m.Attachments)
	copied.Summary = copySummary(m.Summary)
	copied.Minutes = copyMinutes(m.Minutes)
	return &copied
}

func (r *meetingRepository) Create(ctx context.Context, m *model.Meeting) (*model.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyMeeting(m)
	if created.ID == "" {
		created.ID = model.NewMeetingID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.meetings[created.ID] = created
	return copyMeeting(created), nil
}

func (r *meetingRepository) Get(ctx context.Context, id model.MeetingID) (*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.meetings[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "meeting not found", goerr.V("id", id))
	}

	return copyMeeting(m), nil
}

func (r *meetingRepository) List(ctx context.Context, opts ...interfaces.ListMeetingOption) ([]*model.Meeting, error) {
	var filter interfaces.ListMeetingFilter
	for _, opt := range opts {
		opt(&filter)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	meetings := make([]*model.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		meetings = append(meetings, copyMeeting(m))
	}

	return meetings, nil
}

func (r *meetingRepository) Update(ctx context.Context, m *model.Meeting) (*model.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.meetings[m.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "meeting not found", goerr.V("id", m.ID))
	}

	updated := copyMeeting(m)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.meetings[updated.ID] = updated
	return copyMeeting(updated), nil
}

func (r *meetingRepository) Delete(ctx context.Context, id model.MeetingID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.meetings[id]; !exists {
		return goerr.Wrap(ErrNotFound, "meeting not found", goerr.V("id", id))
	}

	delete(r.meetings, id)
	return nil
}
