package notify

import "time"

// SetTimerFunc replaces the timer factory used for expiry and reminder
// scheduling
func (s *Service) SetTimerFunc(after func(d time.Duration, f func()) *time.Timer) {
	s.after = after
}
