package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/repository/firestore"
	"github.com/atrium-hq/atrium/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func newTestMeeting(title string) *model.Meeting {
	return &model.Meeting{
		Title:     title,
		Date:      "2024-01-15",
		Time:      "09:00",
		Duration:  30,
		Location:  "Conference Room A",
		Attendees: []string{"john.doe@company.com", "jane.smith@company.com"},
		Organizer: "john.doe@company.com",
		Status:    types.MeetingStatusScheduled,
	}
}

func runMeetingRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Meeting().Create(ctx, newTestMeeting("Weekly Standup"))
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(model.MeetingID(""))
		gt.Value(t, created.Title).Equal("Weekly Standup")
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()

		created2, err := repo.Meeting().Create(ctx, newTestMeeting("Budget Review"))
		gt.NoError(t, err).Required()
		gt.Value(t, created2.ID).NotEqual(created.ID)
	})

	t.Run("Get retrieves existing meeting", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Meeting().Create(ctx, newTestMeeting("Design Sync"))
		gt.NoError(t, err).Required()

		got, err := repo.Meeting().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Title).Equal("Design Sync")
		gt.Array(t, got.Attendees).Length(2)
	})

	t.Run("Get returns error for missing meeting", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Meeting().Get(context.Background(), model.NewMeetingID())
		gt.Value(t, err).NotNil()
	})

	t.Run("List filters by status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m1, err := repo.Meeting().Create(ctx, newTestMeeting("To Activate"))
		gt.NoError(t, err).Required()
		_, err = repo.Meeting().Create(ctx, newTestMeeting("Stays Scheduled"))
		gt.NoError(t, err).Required()

		m1.Status = types.MeetingStatusActive
		_, err = repo.Meeting().Update(ctx, m1)
		gt.NoError(t, err).Required()

		active, err := repo.Meeting().List(ctx, interfaces.WithMeetingStatus(types.MeetingStatusActive))
		gt.NoError(t, err).Required()
		gt.Array(t, active).Length(1)
		gt.Value(t, active[0].ID).Equal(m1.ID)

		all, err := repo.Meeting().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, all).Length(2)
	})

	t.Run("Update replaces document atomically", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Meeting().Create(ctx, newTestMeeting("Retro"))
		gt.NoError(t, err).Required()

		created.Status = types.MeetingStatusActive
		created.Summary = &model.Summary{
			ID:        model.NewSummaryID(),
			MeetingID: created.ID,
			KeyPoints: []string{"velocity is up"},
			Sentiment: types.SentimentPositive,
		}

		updated, err := repo.Meeting().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.MeetingStatusActive)
		gt.Value(t, updated.CreatedAt).Equal(created.CreatedAt)

		got, err := repo.Meeting().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Status).Equal(types.MeetingStatusActive)
		gt.Value(t, got.Summary).NotNil()
		gt.Array(t, got.Summary.KeyPoints).Length(1)
	})

	t.Run("Update missing meeting fails", func(t *testing.T) {
		repo := newRepo(t)
		m := newTestMeeting("Ghost")
		m.ID = model.NewMeetingID()
		_, err := repo.Meeting().Update(context.Background(), m)
		gt.Value(t, err).NotNil()
	})

	t.Run("Delete removes meeting", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Meeting().Create(ctx, newTestMeeting("Short-lived"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Meeting().Delete(ctx, created.ID))

		_, err = repo.Meeting().Get(ctx, created.ID)
		gt.Value(t, err).NotNil()

		gt.Value(t, repo.Meeting().Delete(ctx, created.ID)).NotNil()
	})

	t.Run("mutating a returned copy does not leak into store", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Meeting().Create(ctx, newTestMeeting("Isolation"))
		gt.NoError(t, err).Required()

		created.Attendees[0] = "intruder@elsewhere.com"

		got, err := repo.Meeting().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Attendees[0]).Equal("john.doe@company.com")
	})
}

func TestMeetingRepository_Memory(t *testing.T) {
	runMeetingRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestMeetingRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	runMeetingRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, "")
		gt.NoError(t, err).Required()
		return repo
	})
}
