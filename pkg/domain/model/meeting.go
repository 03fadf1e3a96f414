package model

import (
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DateLayout is the wire format of Meeting.Date
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format of Meeting.Time
	TimeLayout = "15:04"
)

// MeetingID is a UUID-based identifier for Meeting
type MeetingID string

// NewMeetingID generates a new UUID v4 MeetingID
func NewMeetingID() MeetingID {
	return MeetingID(uuid.New().String())
}

// String returns the string representation of the meeting ID
func (id MeetingID) String() string {
	return string(id)
}

// Meeting represents a scheduled unit of collaboration
type Meeting struct {
	ID                MeetingID               `firestore:"id" json:"id"`
	Title             string                  `firestore:"title" json:"title"`
	Description       string                  `firestore:"description" json:"description"`
	Date              string                  `firestore:"date" json:"date"`
	Time              string                  `firestore:"time" json:"time"`
	Duration          int                     `firestore:"duration" json:"duration"` // minutes
	Location          string                  `firestore:"location" json:"location"`
	Attendees         []string                `firestore:"attendees" json:"attendees"`
	Organizer         string                  `firestore:"organizer" json:"organizer"`
	Status            types.MeetingStatus     `firestore:"status" json:"status"`
	Attachments       []string                `firestore:"attachments" json:"attachments"`
	IsRecurring       bool                    `firestore:"is_recurring" json:"isRecurring"`
	RecurrencePattern types.RecurrencePattern `firestore:"recurrence_pattern,omitempty" json:"recurrencePattern,omitempty"`
	Summary           *Summary                `firestore:"summary,omitempty" json:"summary,omitempty"`
	Minutes           *MinutesOfMeeting       `firestore:"minutes,omitempty" json:"minutes,omitempty"`
	CreatedAt         time.Time               `firestore:"created_at" json:"createdAt"`
	UpdatedAt         time.Time               `firestore:"updated_at" json:"updatedAt"`
}

// Validate checks the meeting's form-level constraints
func (m *Meeting) Validate() error {
	if m.Title == "" {
		return goerr.Wrap(ErrMissingTitle, "meeting title is required")
	}
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return goerr.Wrap(ErrInvalidDate, "meeting date must be YYYY-MM-DD", goerr.V("date", m.Date))
	}
	if _, err := time.Parse(TimeLayout, m.Time); err != nil {
		return goerr.Wrap(ErrInvalidTime, "meeting time must be HH:MM", goerr.V("time", m.Time))
	}
	if m.Duration <= 0 {
		return goerr.Wrap(ErrInvalidDuration, "meeting duration must be positive", goerr.V("duration", m.Duration))
	}

	seen := make(map[string]struct{}, len(m.Attendees))
	for _, a := range m.Attendees {
		if a == "" {
			return goerr.Wrap(ErrInvalidAttendee, "attendee identifier must not be empty")
		}
		if _, ok := seen[a]; ok {
			return goerr.Wrap(ErrDuplicateAttendee, "attendee listed twice", goerr.V("attendee", a))
		}
		seen[a] = struct{}{}
	}

	if m.Status != "" && !m.Status.IsValid() {
		return goerr.Wrap(ErrInvalidStatus, "unknown meeting status", goerr.V("status", m.Status))
	}
	if m.IsRecurring && !m.RecurrencePattern.IsValid() {
		return goerr.Wrap(ErrInvalidRecurrence, "recurring meeting requires a recurrence pattern",
			goerr.V("pattern", m.RecurrencePattern))
	}
	if !m.IsRecurring && m.RecurrencePattern != "" {
		return goerr.Wrap(ErrInvalidRecurrence, "recurrence pattern set on non-recurring meeting",
			goerr.V("pattern", m.RecurrencePattern))
	}

	return nil
}

// StartAt resolves the meeting's absolute start timestamp in the given
// location. Validate must have passed for the result to be meaningful.
func (m *Meeting) StartAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	at, err := time.ParseInLocation(DateLayout+" "+TimeLayout, m.Date+" "+m.Time, loc)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to resolve meeting start time",
			goerr.V("date", m.Date), goerr.V("time", m.Time))
	}
	return at, nil
}
