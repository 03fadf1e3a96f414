package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

// reminderOffsets are the minutes-before-start marks at which reminders
// fire, largest first
var reminderOffsets = []int{5, 4, 3, 2, 1}

// PlannedReminder is a single deferred notification computed from a
// meeting's start time
type PlannedReminder struct {
	FireIn       time.Duration
	Notification model.Notification
}

// PlanMeetingReminders computes the deferred notifications for a meeting
// starting lead from now. Reminders whose fire time has already passed
// are omitted. A non-positive lead yields an empty plan.
func PlanMeetingReminders(meetingID model.MeetingID, title string, lead time.Duration) []PlannedReminder {
	if lead <= 0 {
		return nil
	}

	var plan []PlannedReminder
	for _, minutes := range reminderOffsets {
		fireIn := lead - time.Duration(minutes)*time.Minute
		if fireIn <= 0 {
			continue
		}

		nType := types.NotificationInfo
		if minutes <= 2 {
			nType = types.NotificationWarning
		}

		unit := "minutes"
		if minutes == 1 {
			unit = "minute"
		}

		plan = append(plan, PlannedReminder{
			FireIn: fireIn,
			Notification: model.Notification{
				Type:      nType,
				Title:     "Meeting Reminder",
				Message:   fmt.Sprintf("%q starts in %d %s", title, minutes, unit),
				MeetingID: meetingID,
				TTL:       ReminderTTL,
			},
		})
	}

	plan = append(plan, PlannedReminder{
		FireIn: lead,
		Notification: model.Notification{
			Type:      types.NotificationSuccess,
			Title:     "Meeting Started",
			Message:   fmt.Sprintf("%q is starting now!", title),
			MeetingID: meetingID,
			TTL:       StartedTTL,
		},
	})

	return plan
}

// ScheduleMeetingReminders arms one independent timer per planned
// reminder and returns the armed plan. Timers are deliberately not
// tracked: once scheduled, a reminder fires even if the meeting is
// later edited, cancelled or deleted.
func (s *Service) ScheduleMeetingReminders(ctx context.Context, meetingID model.MeetingID, title string, startAt time.Time) []PlannedReminder {
	lead := startAt.Sub(s.now())
	plan := PlanMeetingReminders(meetingID, title, lead)

	for _, planned := range plan {
		n := planned.Notification
		s.after(planned.FireIn, func() {
			s.Add(ctx, n)
		})
	}

	logging.From(ctx).Info("meeting reminders scheduled",
		"meetingID", meetingID,
		"title", title,
		"startAt", startAt,
		"count", len(plan),
	)
	return plan
}
