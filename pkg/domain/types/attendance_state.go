package types

import "fmt"

// AttendanceState represents a user's attendance on a given day
type AttendanceState string

const (
	AttendancePresent AttendanceState = "present"
	AttendanceAbsent  AttendanceState = "absent"
	AttendanceLate    AttendanceState = "late"
)

// AllAttendanceStates returns all valid attendance states
func AllAttendanceStates() []AttendanceState {
	return []AttendanceState{
		AttendancePresent,
		AttendanceAbsent,
		AttendanceLate,
	}
}

// IsValid checks if the attendance state is valid
func (s AttendanceState) IsValid() bool {
	switch s {
	case AttendancePresent,
		AttendanceAbsent,
		AttendanceLate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the attendance state
func (s AttendanceState) String() string {
	return string(s)
}

// ParseAttendanceState parses a string into an AttendanceState
func ParseAttendanceState(s string) (AttendanceState, error) {
	state := AttendanceState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid attendance state: %s", s)
	}
	return state, nil
}
