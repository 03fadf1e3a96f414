package notify

import (
	"context"
	"sync"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/utils/async"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

const (
	// DefaultTTL is applied to notifications added without an explicit TTL
	DefaultTTL = 5 * time.Second
	// ReminderTTL is used for scheduled meeting reminders
	ReminderTTL = 8 * time.Second
	// StartedTTL is used for the meeting-started notification
	StartedTTL = 10 * time.Second
)

// Sink receives every notification added to the center. Delivery is
// best-effort and asynchronous.
type Sink interface {
	Deliver(ctx context.Context, n model.Notification) error
}

// Service is the in-memory notification center. Notifications are held
// newest-first and expire automatically after their TTL.
type Service struct {
	mu            sync.Mutex
	notifications []model.Notification
	sinks         []Sink
	now           func() time.Time
	after         func(d time.Duration, f func()) *time.Timer
}

// Option is a functional option for Service configuration
type Option func(*Service)

// WithSink registers a delivery sink that mirrors every notification
func WithSink(sink Sink) Option {
	return func(s *Service) {
		s.sinks = append(s.sinks, sink)
	}
}

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a notification center
func New(opts ...Option) *Service {
	s := &Service{
		now:   time.Now,
		after: time.AfterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores a notification, assigns its ID and creation time, and arms
// its expiry timer. A zero TTL gets DefaultTTL. The stored notification
// is returned.
func (s *Service) Add(ctx context.Context, n model.Notification) model.Notification {
	n.ID = model.NewNotificationID()
	n.CreatedAt = s.now()
	if n.TTL <= 0 {
		n.TTL = DefaultTTL
	}

	s.mu.Lock()
	s.notifications = append([]model.Notification{n}, s.notifications...)
	s.mu.Unlock()

	id := n.ID
	s.after(n.TTL, func() {
		s.Dismiss(id)
	})

	for _, sink := range s.sinks {
		sink := sink
		async.Dispatch(ctx, func(ctx context.Context) error {
			return sink.Deliver(ctx, n)
		})
	}

	logging.From(ctx).Debug("notification added",
		"id", n.ID,
		"type", n.Type,
		"title", n.Title,
	)
	return n
}

// Dismiss removes the notification with the given ID. Unknown IDs are
// ignored.
func (s *Service) Dismiss(id model.NotificationID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Clear removes all notifications
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

// List returns the current notifications, newest first
func (s *Service) List() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Warn adds a warning notification with the default TTL
func (s *Service) Warn(ctx context.Context, title, message string, meetingID model.MeetingID) {
	s.Add(ctx, model.Notification{
		Type:      types.NotificationWarning,
		Title:     title,
		Message:   message,
		MeetingID: meetingID,
	})
}
