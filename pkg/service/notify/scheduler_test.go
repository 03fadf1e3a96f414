package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/service/notify"
)

func TestPlanFullLead(t *testing.T) {
	meetingID := model.NewMeetingID()
	plan := notify.PlanMeetingReminders(meetingID, "Sprint Review", 10*time.Minute)

	// five reminders plus the start notification
	gt.Array(t, plan).Length(6)

	gt.Value(t, plan[0].FireIn).Equal(5 * time.Minute)
	gt.Value(t, plan[0].Notification.Type).Equal(types.NotificationInfo)
	gt.Value(t, plan[0].Notification.Message).Equal(`"Sprint Review" starts in 5 minutes`)

	gt.Value(t, plan[3].FireIn).Equal(8 * time.Minute)
	gt.Value(t, plan[3].Notification.Type).Equal(types.NotificationWarning)

	gt.Value(t, plan[4].FireIn).Equal(9 * time.Minute)
	gt.Value(t, plan[4].Notification.Type).Equal(types.NotificationWarning)
	gt.Value(t, plan[4].Notification.Message).Equal(`"Sprint Review" starts in 1 minute`)

	start := plan[5]
	gt.Value(t, start.FireIn).Equal(10 * time.Minute)
	gt.Value(t, start.Notification.Type).Equal(types.NotificationSuccess)
	gt.Value(t, start.Notification.Title).Equal("Meeting Started")
	gt.Value(t, start.Notification.MeetingID).Equal(meetingID)
}

func TestPlanShortLeadSkipsPassedReminders(t *testing.T) {
	plan := notify.PlanMeetingReminders(model.NewMeetingID(), "Standup", 90*time.Second)

	// only the 1-minute reminder still fits, plus the start notification
	gt.Array(t, plan).Length(2)
	gt.Value(t, plan[0].FireIn).Equal(30 * time.Second)
	gt.Value(t, plan[0].Notification.Type).Equal(types.NotificationWarning)
	gt.Value(t, plan[1].FireIn).Equal(90 * time.Second)
	gt.Value(t, plan[1].Notification.Type).Equal(types.NotificationSuccess)
}

func TestPlanImmediateLeadOnlyStart(t *testing.T) {
	plan := notify.PlanMeetingReminders(model.NewMeetingID(), "Standup", 30*time.Second)

	gt.Array(t, plan).Length(1)
	gt.Value(t, plan[0].Notification.Title).Equal("Meeting Started")
}

func TestPlanPastStartSchedulesNothing(t *testing.T) {
	gt.Array(t, notify.PlanMeetingReminders(model.NewMeetingID(), "Standup", 0)).Length(0)
	gt.Array(t, notify.PlanMeetingReminders(model.NewMeetingID(), "Standup", -time.Minute)).Length(0)
}

func TestScheduleArmsIndependentTimers(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := notify.New(notify.WithClock(func() time.Time { return base }))
	rec := &timerRecorder{}
	svc.SetTimerFunc(rec.after)

	meetingID := model.NewMeetingID()
	plan := svc.ScheduleMeetingReminders(context.Background(), meetingID, "Planning", base.Add(3*time.Minute))

	// reminders at 2 and 1 minutes before start, plus the start timer
	timers := rec.recorded()
	gt.Array(t, timers).Length(3)
	gt.Value(t, timers[0].delay).Equal(1 * time.Minute)
	gt.Value(t, timers[1].delay).Equal(2 * time.Minute)
	gt.Value(t, timers[2].delay).Equal(3 * time.Minute)

	// the returned plan describes exactly the timers that were armed
	gt.Array(t, plan).Length(3)
	for i, planned := range plan {
		gt.Value(t, planned.FireIn).Equal(timers[i].delay)
	}

	// firing a timer lands the notification in the center
	timers[0].fn()
	list := svc.List()
	gt.Array(t, list).Length(1)
	gt.Value(t, list[0].Title).Equal("Meeting Reminder")
	gt.Value(t, list[0].MeetingID).Equal(meetingID)
}
