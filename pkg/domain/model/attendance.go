package model

import (
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// AttendanceID is a UUID-based identifier for AttendanceRecord
type AttendanceID string

// NewAttendanceID generates a new UUID v4 AttendanceID
func NewAttendanceID() AttendanceID {
	return AttendanceID(uuid.New().String())
}

// AttendanceRecord captures one user's attendance for one day
type AttendanceRecord struct {
	ID        AttendanceID          `firestore:"id" json:"id"`
	UserID    UserID                `firestore:"user_id" json:"userId"`
	Date      string                `firestore:"date" json:"date"` // YYYY-MM-DD
	State     types.AttendanceState `firestore:"state" json:"state"`
	CheckIn   string                `firestore:"check_in,omitempty" json:"checkIn,omitempty"`   // HH:MM
	CheckOut  string                `firestore:"check_out,omitempty" json:"checkOut,omitempty"` // HH:MM
	CreatedAt time.Time             `firestore:"created_at" json:"createdAt"`
	UpdatedAt time.Time             `firestore:"updated_at" json:"updatedAt"`
}

// Validate checks the record's form-level constraints
func (a *AttendanceRecord) Validate() error {
	if a.UserID == "" {
		return goerr.Wrap(ErrMissingName, "attendance record requires a user")
	}
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return goerr.Wrap(ErrInvalidDate, "attendance date must be YYYY-MM-DD", goerr.V("date", a.Date))
	}
	if !a.State.IsValid() {
		return goerr.Wrap(ErrInvalidState, "unknown attendance state", goerr.V("state", a.State))
	}
	for _, hhmm := range []string{a.CheckIn, a.CheckOut} {
		if hhmm == "" {
			continue
		}
		if _, err := time.Parse(TimeLayout, hhmm); err != nil {
			return goerr.Wrap(ErrInvalidTime, "check-in/out must be HH:MM", goerr.V("value", hhmm))
		}
	}
	return nil
}
