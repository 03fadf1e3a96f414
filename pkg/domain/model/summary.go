package model

import (
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/google/uuid"
)

// SummaryID is a UUID-based identifier for Summary
type SummaryID string

// NewSummaryID generates a new UUID v4 SummaryID
func NewSummaryID() SummaryID {
	return SummaryID(uuid.New().String())
}

// Summary is a point-in-time AI-generated digest of a meeting. It is
// immutable once created; a refresh produces a new Summary that replaces
// the previous one.
type Summary struct {
	ID           SummaryID       `firestore:"id" json:"id"`
	MeetingID    MeetingID       `firestore:"meeting_id" json:"meetingId"`
	KeyPoints    []string        `firestore:"key_points" json:"keyPoints"`
	ActionItems  []string        `firestore:"action_items" json:"actionItems"`
	Decisions    []string        `firestore:"decisions" json:"decisions"`
	Participants []string        `firestore:"participants" json:"participants"`
	Sentiment    types.Sentiment `firestore:"sentiment" json:"sentiment"`
	Confidence   float64         `firestore:"confidence" json:"confidence"` // [0,1]
	GeneratedAt  time.Time       `firestore:"generated_at" json:"generatedAt"`
}
