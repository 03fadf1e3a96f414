package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/types"
)

// DashboardStats aggregates counts for the dashboard landing view
type DashboardStats struct {
	TotalMeetings     int  `json:"totalMeetings"`
	ScheduledMeetings int  `json:"scheduledMeetings"`
	CompletedMeetings int  `json:"completedMeetings"`
	TotalUsers        int  `json:"totalUsers"`
	OpenTasks         int  `json:"openTasks"`
	MeetingInProgress bool `json:"meetingInProgress"`
}

// StatsUseCase computes dashboard aggregates
type StatsUseCase struct {
	repo      interfaces.Repository
	lifecycle *LifecycleUseCase
}

// NewStatsUseCase creates a new StatsUseCase
func NewStatsUseCase(repo interfaces.Repository, lifecycle *LifecycleUseCase) *StatsUseCase {
	return &StatsUseCase{repo: repo, lifecycle: lifecycle}
}

// Dashboard gathers the counts concurrently
func (uc *StatsUseCase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		meetings, err := uc.repo.Meeting().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to count meetings")
		}
		stats.TotalMeetings = len(meetings)
		for _, m := range meetings {
			switch m.Status {
			case types.MeetingStatusScheduled:
				stats.ScheduledMeetings++
			case types.MeetingStatusCompleted:
				stats.CompletedMeetings++
			}
		}
		return nil
	})

	eg.Go(func() error {
		users, err := uc.repo.User().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to count users")
		}
		stats.TotalUsers = len(users)
		return nil
	})

	eg.Go(func() error {
		tasks, err := uc.repo.Task().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to count tasks")
		}
		for _, t := range tasks {
			if t.Status != types.TaskStatusCompleted {
				stats.OpenTasks++
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	_, stats.MeetingInProgress = uc.lifecycle.ActiveMeetingID()
	return &stats, nil
}
