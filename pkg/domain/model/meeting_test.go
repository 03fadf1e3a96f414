package model_test

import (
	"testing"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func validMeeting() *model.Meeting {
	return &model.Meeting{
		Title:     "Weekly Team Standup",
		Date:      "2024-01-15",
		Time:      "09:00",
		Duration:  30,
		Location:  "Conference Room A",
		Attendees: []string{"john.doe@company.com", "jane.smith@company.com"},
		Organizer: "john.doe@company.com",
		Status:    types.MeetingStatusScheduled,
	}
}

func TestMeeting_Validate(t *testing.T) {
	t.Run("valid meeting passes", func(t *testing.T) {
		gt.NoError(t, validMeeting().Validate())
	})

	t.Run("recurring meeting with pattern passes", func(t *testing.T) {
		m := validMeeting()
		m.IsRecurring = true
		m.RecurrencePattern = types.RecurrenceWeekly
		gt.NoError(t, m.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*model.Meeting)
		want   error
	}{
		{"empty title", func(m *model.Meeting) { m.Title = "" }, model.ErrMissingTitle},
		{"bad date", func(m *model.Meeting) { m.Date = "15/01/2024" }, model.ErrInvalidDate},
		{"bad time", func(m *model.Meeting) { m.Time = "9am" }, model.ErrInvalidTime},
		{"zero duration", func(m *model.Meeting) { m.Duration = 0 }, model.ErrInvalidDuration},
		{"negative duration", func(m *model.Meeting) { m.Duration = -10 }, model.ErrInvalidDuration},
		{"empty attendee", func(m *model.Meeting) { m.Attendees = []string{""} }, model.ErrInvalidAttendee},
		{"duplicate attendee", func(m *model.Meeting) {
			m.Attendees = []string{"a@company.com", "a@company.com"}
		}, model.ErrDuplicateAttendee},
		{"unknown status", func(m *model.Meeting) { m.Status = "paused" }, model.ErrInvalidStatus},
		{"recurring without pattern", func(m *model.Meeting) { m.IsRecurring = true }, model.ErrInvalidRecurrence},
		{"pattern without recurring", func(m *model.Meeting) {
			m.RecurrencePattern = types.RecurrenceDaily
		}, model.ErrInvalidRecurrence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeeting()
			tt.mutate(m)
			err := m.Validate()
			gt.Value(t, err).NotNil()
			gt.Error(t, err).Is(tt.want)
		})
	}
}

func TestMeeting_StartAt(t *testing.T) {
	m := validMeeting()
	at, err := m.StartAt(time.UTC)
	gt.NoError(t, err).Required()
	gt.Value(t, at).Equal(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
}

func TestActiveMeetingRun_Elapsed(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	run := &model.ActiveMeetingRun{MeetingID: "m1", StartedAt: start}

	gt.Number(t, run.ElapsedMinutes(start)).Equal(0)
	gt.Number(t, run.ElapsedMinutes(start.Add(59*time.Second))).Equal(0)
	gt.Number(t, run.ElapsedMinutes(start.Add(90*time.Minute+30*time.Second))).Equal(90)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{1, "0h 1m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{90, "1h 30m"},
		{125, "2h 5m"},
		{-5, "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			gt.Value(t, model.FormatDuration(tt.minutes)).Equal(tt.want)
		})
	}
}
