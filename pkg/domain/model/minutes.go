package model

import (
	"fmt"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/google/uuid"
)

// MinutesID is a UUID-based identifier for MinutesOfMeeting
type MinutesID string

// NewMinutesID generates a new UUID v4 MinutesID
func NewMinutesID() MinutesID {
	return MinutesID(uuid.New().String())
}

// ActionItem is a single follow-up task extracted into the minutes
type ActionItem struct {
	Task     string         `firestore:"task" json:"task"`
	Assignee string         `firestore:"assignee" json:"assignee"`
	DueDate  *time.Time     `firestore:"due_date,omitempty" json:"dueDate,omitempty"`
	Priority types.Priority `firestore:"priority" json:"priority"`
}

// MinutesOfMeeting is the finalized record of a completed meeting.
// It is generated exactly once, when the meeting ends, and is never
// regenerated for the same meeting.
type MinutesOfMeeting struct {
	ID             MinutesID    `firestore:"id" json:"id"`
	MeetingID      MeetingID    `firestore:"meeting_id" json:"meetingId"`
	Title          string       `firestore:"title" json:"title"`
	Date           time.Time    `firestore:"date" json:"date"`
	Duration       string       `firestore:"duration" json:"duration"` // e.g. "1h 30m"
	Attendees      []string     `firestore:"attendees" json:"attendees"`
	Agenda         []string     `firestore:"agenda" json:"agenda"`
	KeyDiscussions []string     `firestore:"key_discussions" json:"keyDiscussions"`
	Decisions      []string     `firestore:"decisions" json:"decisions"`
	ActionItems    []ActionItem `firestore:"action_items" json:"actionItems"`
	NextSteps      []string     `firestore:"next_steps" json:"nextSteps"`
	Attachments    []string     `firestore:"attachments" json:"attachments"`
	GeneratedAt    time.Time    `firestore:"generated_at" json:"generatedAt"`
}

// FormatDuration renders a minute count as the minutes document duration
// string, e.g. 90 → "1h 30m", 0 → "0h 0m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
