package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for model-level validation
var (
	ErrMissingTitle      = goerr.New("title is required")
	ErrInvalidDate       = goerr.New("invalid date")
	ErrInvalidTime       = goerr.New("invalid time")
	ErrInvalidDuration   = goerr.New("invalid duration")
	ErrInvalidAttendee   = goerr.New("invalid attendee")
	ErrDuplicateAttendee = goerr.New("duplicate attendee")
	ErrInvalidStatus     = goerr.New("invalid status")
	ErrInvalidRecurrence = goerr.New("invalid recurrence")
	ErrMissingName       = goerr.New("name is required")
	ErrInvalidEmail      = goerr.New("invalid email address")
	ErrMissingAssignee   = goerr.New("assignee is required")
	ErrInvalidPriority   = goerr.New("invalid priority")
	ErrInvalidState      = goerr.New("invalid state")
)
