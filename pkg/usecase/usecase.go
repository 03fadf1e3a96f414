package usecase

import (
	"time"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/service/ai"
	"github.com/atrium-hq/atrium/pkg/service/archive"
	"github.com/atrium-hq/atrium/pkg/service/notify"
)

type UseCases struct {
	repo      interfaces.Repository
	aiService ai.Service
	notifier  *notify.Service
	archiver  *archive.Service
	location  *time.Location

	lifecycleOpts []LifecycleOption

	Meeting    *MeetingUseCase
	Lifecycle  *LifecycleUseCase
	User       *UserUseCase
	Task       *TaskUseCase
	Attendance *AttendanceUseCase
	Stats      *StatsUseCase
}

type Option func(*UseCases)

// WithAIService sets the summarization backend. Defaults to the mock.
func WithAIService(svc ai.Service) Option {
	return func(uc *UseCases) {
		uc.aiService = svc
	}
}

// WithNotifier sets the notification center
func WithNotifier(n *notify.Service) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

// WithArchiver enables minutes archival after meeting end
func WithArchiver(a *archive.Service) Option {
	return func(uc *UseCases) {
		uc.archiver = a
	}
}

// WithLocation sets the timezone used to resolve meeting start times
func WithLocation(loc *time.Location) Option {
	return func(uc *UseCases) {
		uc.location = loc
	}
}

// WithLifecycleOptions forwards options to the lifecycle controller
func WithLifecycleOptions(opts ...LifecycleOption) Option {
	return func(uc *UseCases) {
		uc.lifecycleOpts = append(uc.lifecycleOpts, opts...)
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		location: time.Local,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.aiService == nil {
		uc.aiService = ai.NewMock()
	}
	if uc.notifier == nil {
		uc.notifier = notify.New()
	}

	uc.Lifecycle = NewLifecycleUseCase(repo, uc.aiService, uc.notifier, uc.archiver, uc.lifecycleOpts...)
	uc.Meeting = NewMeetingUseCase(repo, uc.notifier, uc.Lifecycle, uc.location)
	uc.User = NewUserUseCase(repo)
	uc.Task = NewTaskUseCase(repo)
	uc.Attendance = NewAttendanceUseCase(repo)
	uc.Stats = NewStatsUseCase(repo, uc.Lifecycle)

	return uc
}

// Notifier exposes the notification center for the presentation layer
func (uc *UseCases) Notifier() *notify.Service {
	return uc.notifier
}
