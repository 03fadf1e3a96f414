package ai

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
	"github.com/google/uuid"
)

var mockSpeakers = []string{"John Doe", "Jane Smith", "Mike Johnson", "Sarah Wilson"}

var mockUtterances = []string{
	"Let's start with the quarterly review. Our sales numbers are looking good.",
	"I agree, we've seen a 15% increase compared to last quarter.",
	"The marketing campaign has been very effective. We should continue this strategy.",
	"I suggest we allocate more budget to digital marketing for next quarter.",
	"What about the technical challenges we discussed last week?",
	"We've resolved most of them. The development team worked extra hours.",
	"Great! Let's move on to the next agenda item - customer feedback analysis.",
	"We received mostly positive feedback, but there are areas for improvement.",
}

var mockKeyPoints = []string{
	"Quarterly sales increased by 15%",
	"Marketing campaign showing positive results",
	"Technical challenges have been resolved",
	"Customer feedback is mostly positive",
	"Budget allocation discussion for next quarter",
}

var mockActionItems = []string{
	"Allocate more budget to digital marketing",
	"Continue current marketing strategy",
	"Analyze customer feedback for improvements",
	"Prepare next quarter planning",
}

var mockDecisions = []string{
	"Continue current marketing strategy",
	"Increase digital marketing budget",
	"Schedule customer feedback review meeting",
}

var mockAgenda = []string{
	"Quarterly Sales Review",
	"Marketing Campaign Analysis",
	"Technical Updates",
	"Customer Feedback Discussion",
	"Budget Planning for Next Quarter",
}

var mockDiscussions = []string{
	"Sales performance exceeded expectations with 15% growth",
	"Marketing campaigns showing strong ROI and customer engagement",
	"Technical team successfully resolved critical system issues",
	"Customer satisfaction scores improved significantly",
	"Strategic planning for Q4 budget allocation",
}

var mockNextSteps = []string{
	"Review and approve budget proposals",
	"Implement customer feedback improvements",
	"Monitor marketing campaign performance",
	"Prepare for Q4 strategic planning",
}

var mockTopics = []string{"Sales Performance", "Marketing Strategy", "Customer Feedback", "Budget Planning"}

// Mock simulates the AI summarization backend with canned content,
// randomized confidence and artificial latency. It is the default
// Service implementation when no LLM backend is configured.
type Mock struct {
	latency            time.Duration
	transcriptInterval time.Duration

	mu          sync.Mutex
	rng         *rand.Rand
	transcripts []Transcript
	feedStop    chan struct{}
}

var _ Service = &Mock{}

// MockOption is a functional option for Mock configuration
type MockOption func(*Mock)

// WithLatency sets the base simulated processing latency. Summary
// generation takes the base, minutes generation twice the base and
// insights half of it. Zero disables the delay (for tests).
func WithLatency(d time.Duration) MockOption {
	return func(m *Mock) {
		m.latency = d
	}
}

// WithSeed makes the mock's randomness reproducible
func WithSeed(seed int64) MockOption {
	return func(m *Mock) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTranscriptInterval sets how often the simulated transcript feed
// appends an utterance
func WithTranscriptInterval(d time.Duration) MockOption {
	return func(m *Mock) {
		m.transcriptInterval = d
	}
}

// NewMock creates a mock summarization service
func NewMock(opts ...MockOption) *Mock {
	m := &Mock{
		latency:            time.Second,
		transcriptInterval: 30 * time.Second,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// delay sleeps for d unless the context is cancelled first
func (m *Mock) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mock) StartRealTimeTranscription(ctx context.Context, meetingID model.MeetingID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.feedStop != nil {
		close(m.feedStop)
	}
	stop := make(chan struct{})
	m.feedStop = stop

	go m.runTranscriptFeed(ctx, meetingID, stop)
	return nil
}

// runTranscriptFeed appends a canned utterance per interval until the
// script runs out or the feed is stopped
func (m *Mock) runTranscriptFeed(ctx context.Context, meetingID model.MeetingID, stop chan struct{}) {
	ticker := time.NewTicker(m.transcriptInterval)
	defer ticker.Stop()

	for index := 0; index < len(mockUtterances); index++ {
		select {
		case <-ticker.C:
		case <-stop:
			return
		}

		m.mu.Lock()
		emotion := types.SentimentNeutral
		if m.rng.Float64() > 0.7 {
			emotion = types.SentimentPositive
		}
		importance := types.PriorityMedium
		if m.rng.Float64() > 0.5 {
			importance = types.PriorityHigh
		}
		m.transcripts = append(m.transcripts, Transcript{
			ID:         uuid.New().String(),
			Timestamp:  time.Now(),
			Speaker:    mockSpeakers[index%len(mockSpeakers)],
			Content:    mockUtterances[index],
			Emotion:    emotion,
			Importance: importance,
		})
		m.mu.Unlock()
	}

	logging.From(ctx).Debug("mock transcript feed exhausted", "meeting_id", meetingID)
}

func (m *Mock) GenerateRealTimeSummary(ctx context.Context, meetingID model.MeetingID) (*model.Summary, error) {
	if err := m.delay(ctx, m.latency); err != nil {
		return nil, err
	}

	m.mu.Lock()
	confidence := 0.75 + m.rng.Float64()*0.2
	m.mu.Unlock()

	return &model.Summary{
		ID:           model.NewSummaryID(),
		MeetingID:    meetingID,
		KeyPoints:    append([]string(nil), mockKeyPoints...),
		ActionItems:  append([]string(nil), mockActionItems...),
		Decisions:    append([]string(nil), mockDecisions...),
		Participants: append([]string(nil), mockSpeakers...),
		Sentiment:    types.SentimentPositive,
		Confidence:   confidence,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

func (m *Mock) GenerateMeetingMOM(ctx context.Context, meetingID model.MeetingID, title string, attendees []string, durationMinutes int) (*model.MinutesOfMeeting, error) {
	if err := m.delay(ctx, 2*m.latency); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	due := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	return &model.MinutesOfMeeting{
		ID:             model.NewMinutesID(),
		MeetingID:      meetingID,
		Title:          title,
		Date:           now,
		Duration:       model.FormatDuration(durationMinutes),
		Attendees:      append([]string(nil), attendees...),
		Agenda:         append([]string(nil), mockAgenda...),
		KeyDiscussions: append([]string(nil), mockDiscussions...),
		Decisions: []string{
			"Maintain current marketing strategy with increased budget",
			"Implement customer feedback suggestions in product roadmap",
			"Schedule monthly technical review meetings",
			"Approve additional marketing budget for digital channels",
		},
		ActionItems: []model.ActionItem{
			{Task: "Prepare detailed marketing budget proposal", Assignee: "Jane Smith", DueDate: due(7), Priority: types.PriorityHigh},
			{Task: "Create customer feedback analysis report", Assignee: "Mike Johnson", DueDate: due(5), Priority: types.PriorityMedium},
			{Task: "Schedule Q4 planning workshop", Assignee: "Sarah Wilson", DueDate: due(3), Priority: types.PriorityHigh},
		},
		NextSteps: append([]string(nil), mockNextSteps...),
		Attachments: []string{
			"Q3_Sales_Report.pdf",
			"Marketing_Analytics_Dashboard.xlsx",
			"Customer_Feedback_Summary.docx",
		},
		GeneratedAt: now,
	}, nil
}

func (m *Mock) GetRealTimeInsights(ctx context.Context, meetingID model.MeetingID) *model.InsightSnapshot {
	if err := m.delay(ctx, m.latency/2); err != nil {
		return nil
	}

	m.mu.Lock()
	engagement := 0.8 + m.rng.Float64()*0.15
	m.mu.Unlock()

	return &model.InsightSnapshot{
		DurationMinutes: 45,
		ParticipantStats: []model.ParticipantStat{
			{Name: "John Doe", SpeakTime: 12, Contributions: 8},
			{Name: "Jane Smith", SpeakTime: 15, Contributions: 12},
			{Name: "Mike Johnson", SpeakTime: 10, Contributions: 6},
			{Name: "Sarah Wilson", SpeakTime: 8, Contributions: 4},
		},
		TopTopics:  append([]string(nil), mockTopics...),
		Sentiment:  types.SentimentPositive,
		Engagement: engagement,
	}
}

// Cleanup stops the transcript feed and discards captured transcripts
func (m *Mock) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.feedStop != nil {
		close(m.feedStop)
		m.feedStop = nil
	}
	m.transcripts = nil
}

// Transcripts returns a snapshot of the captured transcript entries
func (m *Mock) Transcripts() []Transcript {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Transcript, len(m.transcripts))
	copy(out, m.transcripts)
	return out
}
