package model

import (
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/google/uuid"
)

// NotificationID is a UUID-based identifier for Notification
type NotificationID string

// NewNotificationID generates a new UUID v4 NotificationID
func NewNotificationID() NotificationID {
	return NotificationID(uuid.New().String())
}

// Notification is a transient user-facing alert. It expires and is removed
// after TTL elapses, or earlier when the user dismisses it.
type Notification struct {
	ID        NotificationID         `json:"id"`
	Type      types.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	MeetingID MeetingID              `json:"meetingId,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	TTL       time.Duration          `json:"ttl"`
}
