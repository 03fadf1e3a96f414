package ai

import (
	"context"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
)

// Service is the summarization collaborator contract. The lifecycle
// controller treats every operation as asynchronous and fallible; a real
// AI backend must be substitutable for the mock through this interface.
type Service interface {
	// StartRealTimeTranscription begins capturing meeting content.
	// Best-effort: the caller ignores failures.
	StartRealTimeTranscription(ctx context.Context, meetingID model.MeetingID) error

	// GenerateRealTimeSummary produces a fresh Summary of the meeting so
	// far. Safe to call repeatedly; each call is independent.
	GenerateRealTimeSummary(ctx context.Context, meetingID model.MeetingID) (*model.Summary, error)

	// GenerateMeetingMOM produces the finalized minutes document. Called
	// once per meeting end.
	GenerateMeetingMOM(ctx context.Context, meetingID model.MeetingID, title string, attendees []string, durationMinutes int) (*model.MinutesOfMeeting, error)

	// GetRealTimeInsights returns ephemeral analytics about the meeting
	// in progress. Advisory only: a nil snapshot means no insights are
	// available, and implementations never return an error.
	GetRealTimeInsights(ctx context.Context, meetingID model.MeetingID) *model.InsightSnapshot

	// Cleanup releases transcription resources. Always invoked when a
	// meeting run ends.
	Cleanup()
}

// Transcript is a single captured utterance of an in-progress meeting
type Transcript struct {
	ID         string          `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Speaker    string          `json:"speaker"`
	Content    string          `json:"content"`
	Emotion    types.Sentiment `json:"emotion,omitempty"`
	Importance types.Priority  `json:"importance,omitempty"`
}
