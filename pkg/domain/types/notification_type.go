package types

import "fmt"

// NotificationType represents the severity of a notification
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
	NotificationError   NotificationType = "error"
)

// AllNotificationTypes returns all valid notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		NotificationSuccess,
		NotificationWarning,
		NotificationInfo,
		NotificationError,
	}
}

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSuccess,
		NotificationWarning,
		NotificationInfo,
		NotificationError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the notification type
func (t NotificationType) String() string {
	return string(t)
}

// ParseNotificationType parses a string into a NotificationType
func ParseNotificationType(s string) (NotificationType, error) {
	nt := NotificationType(s)
	if !nt.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return nt, nil
}
