package types_test

import (
	"testing"

	"github.com/atrium-hq/atrium/pkg/domain/types"
)

func TestMeetingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from types.MeetingStatus
		to   types.MeetingStatus
		want bool
	}{
		{"scheduled to active", types.MeetingStatusScheduled, types.MeetingStatusActive, true},
		{"scheduled to cancelled", types.MeetingStatusScheduled, types.MeetingStatusCancelled, true},
		{"scheduled to completed skips active", types.MeetingStatusScheduled, types.MeetingStatusCompleted, false},
		{"active to completed", types.MeetingStatusActive, types.MeetingStatusCompleted, true},
		{"active to cancelled", types.MeetingStatusActive, types.MeetingStatusCancelled, false},
		{"active to scheduled", types.MeetingStatusActive, types.MeetingStatusScheduled, false},
		{"completed is terminal", types.MeetingStatusCompleted, types.MeetingStatusActive, false},
		{"cancelled is terminal", types.MeetingStatusCancelled, types.MeetingStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s → %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMeetingStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status types.MeetingStatus
		want   bool
	}{
		{types.MeetingStatusScheduled, false},
		{types.MeetingStatusActive, false},
		{types.MeetingStatusCompleted, true},
		{types.MeetingStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal(%s) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestParseMeetingStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"scheduled", "scheduled", false},
		{"active", "active", false},
		{"completed", "completed", false},
		{"cancelled", "cancelled", false},
		{"empty", "", true},
		{"uppercase", "SCHEDULED", true},
		{"unknown", "paused", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := types.ParseMeetingStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMeetingStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseRecurrencePattern(t *testing.T) {
	for _, p := range types.AllRecurrencePatterns() {
		got, err := types.ParseRecurrencePattern(p.String())
		if err != nil {
			t.Errorf("ParseRecurrencePattern(%q) unexpected error: %v", p, err)
		}
		if got != p {
			t.Errorf("ParseRecurrencePattern(%q) = %q", p, got)
		}
	}
	if _, err := types.ParseRecurrencePattern("yearly"); err == nil {
		t.Error("ParseRecurrencePattern(yearly) expected error")
	}
}

func TestParseNotificationType(t *testing.T) {
	for _, nt := range types.AllNotificationTypes() {
		if !nt.IsValid() {
			t.Errorf("notification type %q should be valid", nt)
		}
	}
	if _, err := types.ParseNotificationType("fatal"); err == nil {
		t.Error("ParseNotificationType(fatal) expected error")
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range types.AllPriorities() {
		if !p.IsValid() {
			t.Errorf("priority %q should be valid", p)
		}
	}
	if _, err := types.ParsePriority("urgent"); err == nil {
		t.Error("ParsePriority(urgent) expected error")
	}
}

func TestParseSentiment(t *testing.T) {
	for _, s := range types.AllSentiments() {
		if !s.IsValid() {
			t.Errorf("sentiment %q should be valid", s)
		}
	}
	if _, err := types.ParseSentiment("mixed"); err == nil {
		t.Error("ParseSentiment(mixed) expected error")
	}
}

func TestParseTaskStatus(t *testing.T) {
	if _, err := types.ParseTaskStatus("in-progress"); err != nil {
		t.Errorf("ParseTaskStatus(in-progress) unexpected error: %v", err)
	}
	if _, err := types.ParseTaskStatus("done"); err == nil {
		t.Error("ParseTaskStatus(done) expected error")
	}
}

func TestParseAttendanceState(t *testing.T) {
	if _, err := types.ParseAttendanceState("late"); err != nil {
		t.Errorf("ParseAttendanceState(late) unexpected error: %v", err)
	}
	if _, err := types.ParseAttendanceState("remote"); err == nil {
		t.Error("ParseAttendanceState(remote) expected error")
	}
}
