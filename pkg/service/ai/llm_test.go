package ai_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/service/ai"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	response string
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return &gollem.Response{Texts: []string{s.response}}, nil
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	return &gollem.Response{Texts: []string{s.response}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) { return nil, nil }

func (s *mockLLMSession) AppendHistory(*gollem.History) error { return nil }

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient that records the session
// configuration it was asked to create
type mockLLMClient struct {
	response   string
	lastSchema *gollem.Parameter
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	cfg := gollem.NewSessionConfig(options...)
	c.lastSchema = cfg.ResponseSchema()
	return &mockLLMSession{response: c.response}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func TestGenerateMeetingMOM(t *testing.T) {
	client := &mockLLMClient{
		response: `{
			"agenda": ["Roadmap review"],
			"key_discussions": ["Release timeline slipped by a week"],
			"decisions": ["Ship the beta on Friday"],
			"action_items": [
				{"task": "Update the changelog", "assignee": "alice", "priority": "high"},
				{"task": "Notify customers", "assignee": "bob", "priority": "bogus"}
			],
			"next_steps": ["Schedule the retro"]
		}`,
	}

	svc, err := ai.NewLLM(client)
	gt.NoError(t, err).Required()

	meetingID := model.NewMeetingID()
	svc.AppendTranscript(meetingID, ai.Transcript{
		Speaker:   "alice",
		Content:   "Let's go over the roadmap.",
		Timestamp: time.Now(),
	})

	mom, err := svc.GenerateMeetingMOM(context.Background(), meetingID, "Roadmap Sync", []string{"alice", "bob"}, 30)
	gt.NoError(t, err).Required()

	gt.Value(t, mom.MeetingID).Equal(meetingID)
	gt.Value(t, mom.Title).Equal("Roadmap Sync")
	gt.Array(t, mom.KeyDiscussions).Equal([]string{"Release timeline slipped by a week"})
	gt.Array(t, mom.Agenda).Equal([]string{"Roadmap review"})
	gt.Array(t, mom.NextSteps).Equal([]string{"Schedule the retro"})
	gt.Array(t, mom.ActionItems).Length(2).Required()
	gt.Value(t, mom.ActionItems[0].Assignee).Equal("alice")
	gt.Value(t, mom.ActionItems[0].Priority).Equal(types.PriorityHigh)
	// unknown priorities fall back to medium
	gt.Value(t, mom.ActionItems[1].Priority).Equal(types.PriorityMedium)
}

// every field the minutes decoder reads must be declared, and required,
// in the schema handed to the LLM session
func TestMinutesSchemaCoversDecodedFields(t *testing.T) {
	client := &mockLLMClient{response: `{}`}
	svc, err := ai.NewLLM(client)
	gt.NoError(t, err).Required()

	_, err = svc.GenerateMeetingMOM(context.Background(), model.NewMeetingID(), "Sync", nil, 15)
	gt.NoError(t, err).Required()

	schema := client.lastSchema
	gt.Value(t, schema != nil).Equal(true)

	for _, key := range []string{"agenda", "key_discussions", "decisions", "action_items", "next_steps"} {
		prop, ok := schema.Properties[key]
		gt.Bool(t, ok).True()
		gt.Bool(t, prop.Required).True()
	}

	items := schema.Properties["action_items"].Items
	gt.Value(t, items != nil).Equal(true)
	for _, key := range []string{"task", "assignee", "priority"} {
		prop, ok := items.Properties[key]
		gt.Bool(t, ok).True()
		gt.Bool(t, prop.Required).True()
	}
}

func TestGenerateRealTimeSummary(t *testing.T) {
	client := &mockLLMClient{
		response: `{
			"key_points": ["Budget is on track"],
			"action_items": ["Circulate the forecast"],
			"decisions": ["Freeze hiring until Q3"],
			"participants": ["alice", "bob"],
			"sentiment": "positive",
			"confidence": 1.7
		}`,
	}

	svc, err := ai.NewLLM(client)
	gt.NoError(t, err).Required()

	meetingID := model.NewMeetingID()
	summary, err := svc.GenerateRealTimeSummary(context.Background(), meetingID)
	gt.NoError(t, err).Required()

	gt.Value(t, summary.MeetingID).Equal(meetingID)
	gt.Array(t, summary.KeyPoints).Equal([]string{"Budget is on track"})
	gt.Array(t, summary.Participants).Equal([]string{"alice", "bob"})
	gt.Value(t, summary.Sentiment).Equal(types.SentimentPositive)
	// confidence is clamped into [0, 1]
	gt.Value(t, summary.Confidence).Equal(1.0)

	schema := client.lastSchema
	gt.Value(t, schema != nil).Equal(true)
	for _, key := range []string{"key_points", "action_items", "decisions", "participants", "sentiment", "confidence"} {
		prop, ok := schema.Properties[key]
		gt.Bool(t, ok).True()
		gt.Bool(t, prop.Required).True()
	}
}
