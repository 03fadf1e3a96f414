package types

import "fmt"

// MeetingStatus represents the status of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusActive    MeetingStatus = "active"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// AllMeetingStatuses returns all valid meeting statuses
func AllMeetingStatuses() []MeetingStatus {
	return []MeetingStatus{
		MeetingStatusScheduled,
		MeetingStatusActive,
		MeetingStatusCompleted,
		MeetingStatusCancelled,
	}
}

// IsValid checks if the meeting status is valid
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled,
		MeetingStatusActive,
		MeetingStatusCompleted,
		MeetingStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status graph allows moving to next.
// The only edges are scheduled→active, active→completed and
// scheduled→cancelled.
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	switch s {
	case MeetingStatusScheduled:
		return next == MeetingStatusActive || next == MeetingStatusCancelled
	case MeetingStatusActive:
		return next == MeetingStatusCompleted
	default:
		return false
	}
}

// IsTerminal reports whether no further transition exists from the status
func (s MeetingStatus) IsTerminal() bool {
	return s == MeetingStatusCompleted || s == MeetingStatusCancelled
}

// String returns the string representation of the meeting status
func (s MeetingStatus) String() string {
	return string(s)
}

// ParseMeetingStatus parses a string into a MeetingStatus
func ParseMeetingStatus(s string) (MeetingStatus, error) {
	status := MeetingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid meeting status: %s", s)
	}
	return status, nil
}
