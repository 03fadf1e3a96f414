package model

import "github.com/atrium-hq/atrium/pkg/domain/types"

// ParticipantStat holds per-participant activity in an active meeting
type ParticipantStat struct {
	Name          string `json:"name"`
	SpeakTime     int    `json:"speakTime"` // minutes
	Contributions int    `json:"contributions"`
}

// InsightSnapshot is ephemeral, read-only analytics about an in-progress
// meeting. It is advisory only and never persisted.
type InsightSnapshot struct {
	DurationMinutes  int               `json:"durationMinutes"`
	ParticipantStats []ParticipantStat `json:"participantStats"`
	TopTopics        []string          `json:"topTopics"`
	Sentiment        types.Sentiment   `json:"sentiment"`
	Engagement       float64           `json:"engagement"` // [0,1]
}
