package model

import (
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// TaskID is a UUID-based identifier for Task
type TaskID string

// NewTaskID generates a new UUID v4 TaskID
func NewTaskID() TaskID {
	return TaskID(uuid.New().String())
}

// Task represents a tracked work item, possibly originating from a
// meeting's action items
type Task struct {
	ID          TaskID           `firestore:"id" json:"id"`
	Title       string           `firestore:"title" json:"title"`
	Description string           `firestore:"description" json:"description"`
	Assignee    string           `firestore:"assignee" json:"assignee"`
	DueDate     string           `firestore:"due_date,omitempty" json:"dueDate,omitempty"` // YYYY-MM-DD
	Priority    types.Priority   `firestore:"priority" json:"priority"`
	Status      types.TaskStatus `firestore:"status" json:"status"`
	MeetingID   MeetingID        `firestore:"meeting_id,omitempty" json:"meetingId,omitempty"`
	CreatedAt   time.Time        `firestore:"created_at" json:"createdAt"`
	UpdatedAt   time.Time        `firestore:"updated_at" json:"updatedAt"`
}

// Validate checks the task's form-level constraints
func (t *Task) Validate() error {
	if t.Title == "" {
		return goerr.Wrap(ErrMissingTitle, "task title is required")
	}
	if t.Assignee == "" {
		return goerr.Wrap(ErrMissingAssignee, "task assignee is required")
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		return goerr.Wrap(ErrInvalidPriority, "unknown task priority", goerr.V("priority", t.Priority))
	}
	if t.Status != "" && !t.Status.IsValid() {
		return goerr.Wrap(ErrInvalidStatus, "unknown task status", goerr.V("status", t.Status))
	}
	if t.DueDate != "" {
		if _, err := time.Parse(DateLayout, t.DueDate); err != nil {
			return goerr.Wrap(ErrInvalidDate, "due date must be YYYY-MM-DD", goerr.V("due_date", t.DueDate))
		}
	}
	return nil
}
