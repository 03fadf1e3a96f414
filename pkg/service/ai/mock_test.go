package ai_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/service/ai"
)

func TestMockGenerateRealTimeSummary(t *testing.T) {
	mock := ai.NewMock(ai.WithLatency(0), ai.WithSeed(42))
	meetingID := model.NewMeetingID()

	summary, err := mock.GenerateRealTimeSummary(context.Background(), meetingID)
	gt.NoError(t, err).Required()

	gt.Value(t, summary.MeetingID).Equal(meetingID)
	gt.Value(t, summary.Sentiment).Equal(types.SentimentPositive)
	gt.Number(t, summary.Confidence).GreaterOrEqual(0.75).LessOrEqual(0.95)
	gt.Array(t, summary.KeyPoints).Length(5)
	gt.Array(t, summary.Participants).Length(4)
	gt.Bool(t, summary.GeneratedAt.IsZero()).False()

	second, err := mock.GenerateRealTimeSummary(context.Background(), meetingID)
	gt.NoError(t, err).Required()
	gt.Value(t, second.ID == summary.ID).Equal(false)
}

func TestMockGenerateMeetingMOM(t *testing.T) {
	mock := ai.NewMock(ai.WithLatency(0), ai.WithSeed(1))
	meetingID := model.NewMeetingID()
	attendees := []string{"John Doe", "Jane Smith"}

	mom, err := mock.GenerateMeetingMOM(context.Background(), meetingID, "Quarterly Review", attendees, 90)
	gt.NoError(t, err).Required()

	gt.Value(t, mom.MeetingID).Equal(meetingID)
	gt.Value(t, mom.Title).Equal("Quarterly Review")
	gt.Value(t, mom.Duration).Equal("1h 30m")
	gt.Array(t, mom.Attendees).Equal(attendees)
	gt.Array(t, mom.ActionItems).Length(3)
	for _, item := range mom.ActionItems {
		gt.Value(t, item.Task == "").Equal(false)
		gt.Value(t, item.Assignee == "").Equal(false)
		gt.Bool(t, item.Priority.IsValid()).True()
		gt.Value(t, item.DueDate != nil).Equal(true)
	}
}

func TestMockGetRealTimeInsights(t *testing.T) {
	mock := ai.NewMock(ai.WithLatency(0), ai.WithSeed(7))

	insights := mock.GetRealTimeInsights(context.Background(), model.NewMeetingID())
	gt.Value(t, insights != nil).Equal(true)
	gt.Array(t, insights.ParticipantStats).Length(4)
	gt.Number(t, insights.Engagement).GreaterOrEqual(0.8).LessOrEqual(0.95)
	gt.Value(t, insights.Sentiment).Equal(types.SentimentPositive)
}

func TestMockInsightsCancelledContext(t *testing.T) {
	mock := ai.NewMock(ai.WithLatency(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	insights := mock.GetRealTimeInsights(ctx, model.NewMeetingID())
	gt.Value(t, insights == nil).Equal(true)
}

func TestMockTranscriptFeed(t *testing.T) {
	mock := ai.NewMock(ai.WithLatency(0), ai.WithTranscriptInterval(5*time.Millisecond))
	meetingID := model.NewMeetingID()

	gt.NoError(t, mock.StartRealTimeTranscription(context.Background(), meetingID))

	deadline := time.Now().Add(2 * time.Second)
	for len(mock.Transcripts()) < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	transcripts := mock.Transcripts()
	gt.Number(t, len(transcripts)).GreaterOrEqual(3)
	for _, tr := range transcripts {
		gt.Value(t, tr.Speaker == "").Equal(false)
		gt.Value(t, tr.Content == "").Equal(false)
	}

	mock.Cleanup()
	gt.Array(t, mock.Transcripts()).Length(0)
}

func TestMockCleanupIdempotent(t *testing.T) {
	mock := ai.NewMock(ai.WithLatency(0))
	mock.Cleanup()
	mock.Cleanup()
}
