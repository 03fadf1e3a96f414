package interfaces

import (
	"context"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
)

// ListMeetingOption narrows the result of MeetingRepository.List
type ListMeetingOption func(*ListMeetingFilter)

// ListMeetingFilter holds the accumulated list filters
type ListMeetingFilter struct {
	Status types.MeetingStatus
}

// WithMeetingStatus filters listed meetings by status
func WithMeetingStatus(status types.MeetingStatus) ListMeetingOption {
	return func(f *ListMeetingFilter) {
		f.Status = status
	}
}

// MeetingRepository defines the interface for Meeting data access.
// Update replaces the whole document, so a status change and an attached
// summary or minutes document land as one atomic mutation.
type MeetingRepository interface {
	// Create creates a new meeting with a generated ID
	Create(ctx context.Context, m *model.Meeting) (*model.Meeting, error)

	// Get retrieves a meeting by ID
	Get(ctx context.Context, id model.MeetingID) (*model.Meeting, error)

	// List retrieves meetings, optionally filtered
	List(ctx context.Context, opts ...ListMeetingOption) ([]*model.Meeting, error)

	// Update replaces an existing meeting document
	Update(ctx context.Context, m *model.Meeting) (*model.Meeting, error)

	// Delete deletes a meeting by ID
	Delete(ctx context.Context, id model.MeetingID) error
}
