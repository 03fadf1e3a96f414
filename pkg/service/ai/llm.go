package ai

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"sync"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

//go:embed prompt/summary.md
var summaryPromptTmpl string

//go:embed prompt/mom.md
var momPromptTmpl string

var (
	summaryPrompt = template.Must(template.New("summary").Parse(summaryPromptTmpl))
	momPrompt     = template.Must(template.New("mom").Parse(momPromptTmpl))
)

// LLM implements Service on top of a gollem LLM client. Transcripts are
// accumulated per meeting and fed into the prompts so later summaries see
// the full conversation so far.
type LLM struct {
	llmClient gollem.LLMClient

	mu          sync.Mutex
	transcripts map[model.MeetingID][]Transcript
}

// LLMOption is a functional option for LLM configuration
type LLMOption func(*LLM)

// NewLLM creates an AI service backed by the provided LLM client
func NewLLM(llmClient gollem.LLMClient, opts ...LLMOption) (*LLM, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	s := &LLM{
		llmClient:   llmClient,
		transcripts: make(map[model.MeetingID][]Transcript),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// StartRealTimeTranscription prepares transcript accumulation for the meeting.
// Actual audio capture happens outside this service; captured utterances are
// appended via AppendTranscript.
func (s *LLM) StartRealTimeTranscription(ctx context.Context, meetingID model.MeetingID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transcripts[meetingID]; !ok {
		s.transcripts[meetingID] = nil
	}

	logging.From(ctx).Info("transcription started", "meetingID", meetingID)
	return nil
}

// AppendTranscript records a captured utterance for the meeting
func (s *LLM) AppendTranscript(meetingID model.MeetingID, tr Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[meetingID] = append(s.transcripts[meetingID], tr)
}

func (s *LLM) snapshot(meetingID model.MeetingID) []Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Transcript(nil), s.transcripts[meetingID]...)
}

type summaryResponse struct {
	KeyPoints    []string `json:"key_points"`
	ActionItems  []string `json:"action_items"`
	Decisions    []string `json:"decisions"`
	Participants []string `json:"participants"`
	Sentiment    string   `json:"sentiment"`
	Confidence   float64  `json:"confidence"`
}

// GenerateRealTimeSummary produces a summary of the meeting so far
func (s *LLM) GenerateRealTimeSummary(ctx context.Context, meetingID model.MeetingID) (*model.Summary, error) {
	var buf bytes.Buffer
	if err := summaryPrompt.Execute(&buf, map[string]any{
		"MeetingID":   meetingID,
		"Transcripts": s.snapshot(meetingID),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to render summary prompt")
	}

	session, err := s.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(summarySchema()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate summary", goerr.V("meetingID", meetingID))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty LLM response", goerr.V("meetingID", meetingID))
	}

	var parsed summaryResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse summary response", goerr.V("response", resp.Texts[0]))
	}

	sentiment, err := types.ParseSentiment(parsed.Sentiment)
	if err != nil {
		sentiment = types.SentimentNeutral
	}

	return &model.Summary{
		ID:           model.NewSummaryID(),
		MeetingID:    meetingID,
		KeyPoints:    parsed.KeyPoints,
		ActionItems:  parsed.ActionItems,
		Decisions:    parsed.Decisions,
		Participants: parsed.Participants,
		Sentiment:    sentiment,
		Confidence:   clampConfidence(parsed.Confidence),
		GeneratedAt:  time.Now(),
	}, nil
}

type momResponse struct {
	Agenda         []string `json:"agenda"`
	KeyDiscussions []string `json:"key_discussions"`
	Decisions      []string `json:"decisions"`
	ActionItems    []struct {
		Task     string `json:"task"`
		Assignee string `json:"assignee"`
		Priority string `json:"priority"`
	} `json:"action_items"`
	NextSteps []string `json:"next_steps"`
}

// GenerateMeetingMOM produces the final minutes-of-meeting document
func (s *LLM) GenerateMeetingMOM(ctx context.Context, meetingID model.MeetingID, title string, attendees []string, durationMinutes int) (*model.MinutesOfMeeting, error) {
	var buf bytes.Buffer
	if err := momPrompt.Execute(&buf, map[string]any{
		"MeetingID":   meetingID,
		"Title":       title,
		"Duration":    model.FormatDuration(durationMinutes),
		"Attendees":   attendees,
		"Transcripts": s.snapshot(meetingID),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to render minutes prompt")
	}

	session, err := s.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(momSchema()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate minutes", goerr.V("meetingID", meetingID))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty LLM response", goerr.V("meetingID", meetingID))
	}

	var parsed momResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse minutes response", goerr.V("response", resp.Texts[0]))
	}

	items := make([]model.ActionItem, 0, len(parsed.ActionItems))
	for _, it := range parsed.ActionItems {
		priority, err := types.ParsePriority(it.Priority)
		if err != nil {
			priority = types.PriorityMedium
		}
		items = append(items, model.ActionItem{
			Task:     it.Task,
			Assignee: it.Assignee,
			Priority: priority,
		})
	}

	now := time.Now()
	return &model.MinutesOfMeeting{
		ID:             model.NewMinutesID(),
		MeetingID:      meetingID,
		Title:          title,
		Date:           now,
		Duration:       model.FormatDuration(durationMinutes),
		Attendees:      attendees,
		Agenda:         parsed.Agenda,
		KeyDiscussions: parsed.KeyDiscussions,
		Decisions:      parsed.Decisions,
		ActionItems:    items,
		NextSteps:      parsed.NextSteps,
		GeneratedAt:    now,
	}, nil
}

// GetRealTimeInsights derives engagement metrics from the accumulated
// transcript. It never fails; a meeting without transcripts yields nil.
func (s *LLM) GetRealTimeInsights(ctx context.Context, meetingID model.MeetingID) *model.InsightSnapshot {
	transcripts := s.snapshot(meetingID)
	if len(transcripts) == 0 {
		return nil
	}

	contributions := map[string]int{}
	var first, last time.Time
	for i, tr := range transcripts {
		contributions[tr.Speaker]++
		if i == 0 || tr.Timestamp.Before(first) {
			first = tr.Timestamp
		}
		if tr.Timestamp.After(last) {
			last = tr.Timestamp
		}
	}

	total := len(transcripts)
	stats := make([]model.ParticipantStat, 0, len(contributions))
	for speaker, count := range contributions {
		share := float64(count) / float64(total)
		stats = append(stats, model.ParticipantStat{
			Name:          speaker,
			SpeakTime:     int(last.Sub(first).Minutes() * share),
			Contributions: count,
		})
	}

	return &model.InsightSnapshot{
		DurationMinutes:  int(last.Sub(first).Minutes()),
		ParticipantStats: stats,
		Sentiment:        types.SentimentNeutral,
		Engagement:       clampConfidence(float64(len(contributions)) / 4.0),
	}
}

// Cleanup releases all accumulated transcripts
func (s *LLM) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts = make(map[model.MeetingID][]Transcript)
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func summarySchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "MeetingSummary",
		Description: "Structured summary of the meeting so far",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"key_points": {
				Type:        gollem.TypeArray,
				Description: "Main points discussed",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
			"action_items": {
				Type:        gollem.TypeArray,
				Description: "Action items identified so far",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
			"decisions": {
				Type:        gollem.TypeArray,
				Description: "Decisions made so far",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
			"participants": {
				Type:        gollem.TypeArray,
				Description: "Names of active participants",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
			"sentiment": {
				Type:        gollem.TypeString,
				Description: "Overall sentiment: positive, neutral or negative",
				Required:    true,
			},
			"confidence": {
				Type:        gollem.TypeNumber,
				Description: "Confidence in the summary between 0 and 1",
				Required:    true,
			},
		},
	}
}

func momSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "MinutesOfMeeting",
		Description: "Final minutes of a completed meeting",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"agenda": {
				Type:        gollem.TypeArray,
				Description: "Agenda items covered",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
			"key_discussions": {
				Type:        gollem.TypeArray,
				Description: "Key discussion points",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
			"decisions": {
				Type:        gollem.TypeArray,
				Description: "Decisions made during the meeting",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
			"action_items": {
				Type:        gollem.TypeArray,
				Description: "Action items with assignees",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"task":     {Type: gollem.TypeString, Description: "What needs to be done", Required: true},
						"assignee": {Type: gollem.TypeString, Description: "Who is responsible", Required: true},
						"priority": {Type: gollem.TypeString, Description: "high, medium or low", Required: true},
					},
				},
				Required: true,
			},
			"next_steps": {
				Type:        gollem.TypeArray,
				Description: "Follow-up steps after the meeting",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
				Required:    true,
			},
		},
	}
}
