package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// Lifecycle errors
	ErrMeetingNotScheduled  = errors.New("meeting is not in scheduled status")
	ErrMeetingAlreadyActive = errors.New("another meeting is already active")
	ErrNoActiveMeeting      = errors.New("no meeting is active")

	// Mutation errors
	ErrActiveMeetingDeletion = errors.New("active meeting cannot be deleted")
	ErrInvalidTransition     = errors.New("invalid meeting status transition")
)

// Context keys for error values
const (
	MeetingIDKey = "meeting_id"
	UserIDKey    = "user_id"
	TaskIDKey    = "task_id"
)
