package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
)

// TaskUseCase handles follow-up task operations
type TaskUseCase struct {
	repo interfaces.Repository
}

// NewTaskUseCase creates a new TaskUseCase
func NewTaskUseCase(repo interfaces.Repository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

func (uc *TaskUseCase) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.Status == "" {
		task.Status = types.TaskStatusPending
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Task().Create(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task", goerr.V("title", task.Title))
	}
	return created, nil
}

func (uc *TaskUseCase) Get(ctx context.Context, id model.TaskID) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
	}
	return task, nil
}

func (uc *TaskUseCase) List(ctx context.Context) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks")
	}
	return tasks, nil
}

// ListByMeeting returns the tasks spawned from a meeting
func (uc *TaskUseCase) ListByMeeting(ctx context.Context, meetingID model.MeetingID) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list meeting tasks", goerr.V(MeetingIDKey, meetingID))
	}
	return tasks, nil
}

func (uc *TaskUseCase) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, task.ID))
	}
	return updated, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, id model.TaskID) error {
	if err := uc.repo.Task().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
	}
	return nil
}
