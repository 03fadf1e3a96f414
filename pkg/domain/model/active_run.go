package model

import "time"

// ActiveMeetingRun is the runtime projection of a Meeting while it is
// active. It exists only between start and end of a meeting, is owned
// exclusively by the lifecycle controller, and is never persisted.
type ActiveMeetingRun struct {
	MeetingID         MeetingID `json:"meetingId"`
	Title             string    `json:"title"`
	Attendees         []string  `json:"attendees"`
	StartedAt         time.Time `json:"startedAt"`
	ParticipantCount  int       `json:"participantCount"`
	TranscriptEnabled bool      `json:"transcriptEnabled"`
	Summary           *Summary  `json:"summary,omitempty"` // most recent real-time summary
}

// Elapsed returns the duration since the run started
func (r *ActiveMeetingRun) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.StartedAt)
}

// ElapsedMinutes returns the whole minutes since the run started
func (r *ActiveMeetingRun) ElapsedMinutes(now time.Time) int {
	return int(r.Elapsed(now) / time.Minute)
}
