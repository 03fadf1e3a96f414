package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
)

func TestDashboardStats(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()

	first, err := uc.Meeting.Create(ctx, newMeetingInput())
	gt.NoError(t, err).Required()
	_, err = uc.Meeting.Create(ctx, newMeetingInput())
	gt.NoError(t, err).Required()

	_, err = uc.User.Create(ctx, &model.User{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	})
	gt.NoError(t, err).Required()

	_, err = uc.Task.Create(ctx, &model.Task{
		Title:    "Send follow-up notes",
		Assignee: "alice",
		Priority: types.PriorityMedium,
	})
	gt.NoError(t, err).Required()
	done, err := uc.Task.Create(ctx, &model.Task{
		Title:    "Book the room",
		Assignee: "bob",
		Priority: types.PriorityLow,
		Status:   types.TaskStatusCompleted,
	})
	gt.NoError(t, err).Required()
	_ = done

	_, err = uc.Lifecycle.Start(ctx, first.ID)
	gt.NoError(t, err).Required()

	stats, err := uc.Stats.Dashboard(ctx)
	gt.NoError(t, err).Required()

	gt.Value(t, stats.TotalMeetings).Equal(2)
	gt.Value(t, stats.ScheduledMeetings).Equal(1)
	gt.Value(t, stats.CompletedMeetings).Equal(0)
	gt.Value(t, stats.TotalUsers).Equal(1)
	gt.Value(t, stats.OpenTasks).Equal(1)
	gt.Bool(t, stats.MeetingInProgress).True()

	_, err = uc.Lifecycle.End(ctx)
	gt.NoError(t, err).Required()

	stats, err = uc.Stats.Dashboard(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, stats.CompletedMeetings).Equal(1)
	gt.Bool(t, stats.MeetingInProgress).False()
}
