package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/service/ai"
	"github.com/atrium-hq/atrium/pkg/service/archive"
	"github.com/atrium-hq/atrium/pkg/service/notify"
	"github.com/atrium-hq/atrium/pkg/utils/async"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

const (
	// DefaultRefreshInitialDelay is the wait before the first automatic
	// summary refresh after a meeting starts
	DefaultRefreshInitialDelay = 2 * time.Minute
	// DefaultRefreshInterval is the period between automatic summary
	// refreshes after the first one
	DefaultRefreshInterval = 5 * time.Minute
)

// LifecycleUseCase owns the single active-meeting slot. At most one
// meeting run exists at a time; all slot mutations go through this
// controller.
//
// Summary refreshes are tagged with the run's epoch and a sequence
// number. A response is applied only while its epoch still matches the
// current run and no newer response has been applied, so a request that
// resolves after the run ended (or after a later request) is discarded.
type LifecycleUseCase struct {
	repo      interfaces.Repository
	aiService ai.Service
	notifier  *notify.Service
	archiver  *archive.Service

	initialDelay time.Duration
	interval     time.Duration
	clock        func() time.Time

	mu          sync.Mutex
	run         *model.ActiveMeetingRun
	epoch       uint64
	seq         uint64
	lastApplied uint64
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// LifecycleOption is a functional option for LifecycleUseCase configuration
type LifecycleOption func(*LifecycleUseCase)

// WithRefreshSchedule overrides the automatic refresh timing
func WithRefreshSchedule(initialDelay, interval time.Duration) LifecycleOption {
	return func(uc *LifecycleUseCase) {
		uc.initialDelay = initialDelay
		uc.interval = interval
	}
}

// WithLifecycleClock overrides the time source, for tests
func WithLifecycleClock(clock func() time.Time) LifecycleOption {
	return func(uc *LifecycleUseCase) {
		uc.clock = clock
	}
}

// NewLifecycleUseCase creates the active-meeting lifecycle controller
func NewLifecycleUseCase(repo interfaces.Repository, aiService ai.Service, notifier *notify.Service, archiver *archive.Service, opts ...LifecycleOption) *LifecycleUseCase {
	uc := &LifecycleUseCase{
		repo:         repo,
		aiService:    aiService,
		notifier:     notifier,
		archiver:     archiver,
		initialDelay: DefaultRefreshInitialDelay,
		interval:     DefaultRefreshInterval,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Start transitions a scheduled meeting to active and creates its run.
// Rejected when another run exists or the meeting is not in scheduled
// status; rejection leaves all state untouched.
func (uc *LifecycleUseCase) Start(ctx context.Context, meetingID model.MeetingID) (*model.ActiveMeetingRun, error) {
	meeting, err := uc.repo.Meeting().Get(ctx, meetingID)
	if err != nil {
		return nil, goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V(MeetingIDKey, meetingID))
	}
	if meeting.Status != types.MeetingStatusScheduled {
		return nil, goerr.Wrap(ErrMeetingNotScheduled, "only scheduled meetings can be started",
			goerr.V(MeetingIDKey, meetingID),
			goerr.V("status", meeting.Status),
		)
	}

	uc.mu.Lock()
	if uc.run != nil {
		active := uc.run.MeetingID
		uc.mu.Unlock()
		return nil, goerr.Wrap(ErrMeetingAlreadyActive, "a meeting is already in progress",
			goerr.V(MeetingIDKey, meetingID),
			goerr.V("active_meeting_id", active),
		)
	}

	now := uc.clock()
	run := &model.ActiveMeetingRun{
		MeetingID:         meeting.ID,
		Title:             meeting.Title,
		Attendees:         append([]string(nil), meeting.Attendees...),
		StartedAt:         now,
		ParticipantCount:  len(meeting.Attendees),
		TranscriptEnabled: true,
	}
	uc.run = run
	uc.epoch++
	uc.seq = 0
	uc.lastApplied = 0
	uc.stopCh = make(chan struct{})
	uc.doneCh = make(chan struct{})
	stopCh, doneCh := uc.stopCh, uc.doneCh
	uc.mu.Unlock()

	meeting.Status = types.MeetingStatusActive
	meeting.UpdatedAt = now
	if _, err := uc.repo.Meeting().Update(ctx, meeting); err != nil {
		uc.mu.Lock()
		if uc.stopCh == stopCh {
			// slot still ours, roll it back
			uc.run = nil
			uc.epoch++
			uc.stopCh = nil
			uc.doneCh = nil
			uc.mu.Unlock()
			close(stopCh)
			close(doneCh)
		} else {
			// End already claimed the run and closed stopCh; the refresh
			// loop never started, so release End's wait on doneCh
			uc.mu.Unlock()
			close(doneCh)
		}
		return nil, goerr.Wrap(err, "failed to persist active status", goerr.V(MeetingIDKey, meetingID))
	}

	// best-effort, failures never block the transition
	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := uc.aiService.StartRealTimeTranscription(ctx, meetingID); err != nil {
			logging.From(ctx).Warn("transcription start failed", "meetingID", meetingID, "error", err.Error())
		}
		return nil
	})

	go uc.runRefreshLoop(ctx, stopCh, doneCh)

	logging.From(ctx).Info("meeting started",
		"meetingID", meetingID,
		"title", meeting.Title,
		"participants", run.ParticipantCount,
	)
	return uc.snapshotRun(), nil
}

// runRefreshLoop drives the automatic summary refresh schedule. Each
// refresh runs in its own goroutine so the loop can be stopped without
// waiting for an in-flight request.
func (uc *LifecycleUseCase) runRefreshLoop(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	initial := time.NewTimer(uc.initialDelay)
	defer initial.Stop()

	select {
	case <-initial.C:
	case <-stopCh:
		return
	case <-ctx.Done():
		return
	}
	uc.dispatchRefresh(ctx)

	ticker := time.NewTicker(uc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			uc.dispatchRefresh(ctx)
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (uc *LifecycleUseCase) dispatchRefresh(ctx context.Context) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		// refresh failures are logged and notified inside, never fatal
		_, _ = uc.RefreshSummary(ctx)
		return nil
	})
}

// RefreshSummary generates a fresh summary for the current run and
// stores it, replacing the prior one. Manual and automatic refreshes
// share this path. Returns the applied summary, or nil when the
// response was discarded because the run ended or a newer response was
// already applied.
func (uc *LifecycleUseCase) RefreshSummary(ctx context.Context) (*model.Summary, error) {
	uc.mu.Lock()
	if uc.run == nil {
		uc.mu.Unlock()
		return nil, goerr.Wrap(ErrNoActiveMeeting, "nothing to summarize")
	}
	meetingID := uc.run.MeetingID
	epoch := uc.epoch
	uc.seq++
	seq := uc.seq
	uc.mu.Unlock()

	summary, err := uc.aiService.GenerateRealTimeSummary(ctx, meetingID)
	if err != nil {
		logging.From(ctx).Warn("summary refresh failed, keeping previous summary",
			"meetingID", meetingID,
			"error", err.Error(),
		)
		uc.notifier.Warn(ctx, "Summary Unavailable", "Real-time summary could not be refreshed", meetingID)
		return nil, goerr.Wrap(err, "failed to refresh summary", goerr.V(MeetingIDKey, meetingID))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.run == nil || uc.epoch != epoch {
		logging.From(ctx).Debug("discarding summary for ended run", "meetingID", meetingID)
		return nil, nil
	}
	if seq < uc.lastApplied {
		logging.From(ctx).Debug("discarding superseded summary", "meetingID", meetingID, "seq", seq)
		return nil, nil
	}

	uc.lastApplied = seq
	uc.run.Summary = summary
	return summary, nil
}

// End finalizes the current run. No-op when idle. The meeting always
// reaches completed status; a minutes-generation failure only costs the
// attached document, never the transition.
func (uc *LifecycleUseCase) End(ctx context.Context) (*model.Meeting, error) {
	uc.mu.Lock()
	if uc.run == nil {
		uc.mu.Unlock()
		return nil, nil
	}
	run := uc.run
	stopCh, doneCh := uc.stopCh, uc.doneCh
	uc.run = nil
	uc.epoch++
	uc.stopCh = nil
	uc.doneCh = nil
	uc.mu.Unlock()

	// stop the refresh schedule before anything else; an in-flight
	// request is discarded by the epoch bump above
	close(stopCh)
	<-doneCh

	defer uc.aiService.Cleanup()

	now := uc.clock()
	elapsed := run.ElapsedMinutes(now)

	mom, momErr := uc.aiService.GenerateMeetingMOM(ctx, run.MeetingID, run.Title, run.Attendees, elapsed)
	if momErr != nil {
		logging.From(ctx).Error("minutes generation failed, completing without minutes",
			"meetingID", run.MeetingID,
			"error", momErr.Error(),
		)
		uc.notifier.Warn(ctx, "Minutes Unavailable", "AI meeting minutes could not be generated", run.MeetingID)
	}

	meeting, err := uc.repo.Meeting().Get(ctx, run.MeetingID)
	if err != nil {
		return nil, goerr.Wrap(ErrMeetingNotFound, "meeting vanished during run", goerr.V(MeetingIDKey, run.MeetingID))
	}

	meeting.Status = types.MeetingStatusCompleted
	meeting.UpdatedAt = now
	meeting.Summary = run.Summary
	if momErr == nil {
		meeting.Minutes = mom
	}

	updated, err := uc.repo.Meeting().Update(ctx, meeting)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to finalize meeting", goerr.V(MeetingIDKey, run.MeetingID))
	}

	if momErr == nil && uc.archiver != nil {
		archived := mom
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.archiver.StoreMinutes(ctx, archived)
		})
	}

	logging.From(ctx).Info("meeting ended",
		"meetingID", run.MeetingID,
		"durationMinutes", elapsed,
		"minutesAttached", momErr == nil,
	)
	return updated, nil
}

// Insights returns ephemeral analytics for the current run, nil when
// idle or unavailable
func (uc *LifecycleUseCase) Insights(ctx context.Context) *model.InsightSnapshot {
	uc.mu.Lock()
	if uc.run == nil {
		uc.mu.Unlock()
		return nil
	}
	meetingID := uc.run.MeetingID
	uc.mu.Unlock()

	return uc.aiService.GetRealTimeInsights(ctx, meetingID)
}

// ActiveRun returns a snapshot of the current run, nil when idle
func (uc *LifecycleUseCase) ActiveRun() *model.ActiveMeetingRun {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotRunLocked()
}

// ActiveMeetingID reports which meeting is running, if any
func (uc *LifecycleUseCase) ActiveMeetingID() (model.MeetingID, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.run == nil {
		return "", false
	}
	return uc.run.MeetingID, true
}

func (uc *LifecycleUseCase) snapshotRun() *model.ActiveMeetingRun {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotRunLocked()
}

func (uc *LifecycleUseCase) snapshotRunLocked() *model.ActiveMeetingRun {
	if uc.run == nil {
		return nil
	}
	out := *uc.run
	out.Attendees = append([]string(nil), uc.run.Attendees...)
	if uc.run.Summary != nil {
		s := *uc.run.Summary
		out.Summary = &s
	}
	return &out
}
