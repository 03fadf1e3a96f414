package interfaces

import (
	"context"

	"github.com/atrium-hq/atrium/pkg/domain/model"
)

// TaskRepository defines the interface for Task data access
type TaskRepository interface {
	Create(ctx context.Context, t *model.Task) (*model.Task, error)
	Get(ctx context.Context, id model.TaskID) (*model.Task, error)
	List(ctx context.Context) ([]*model.Task, error)
	ListByMeeting(ctx context.Context, meetingID model.MeetingID) ([]*model.Task, error)
	Update(ctx context.Context, t *model.Task) (*model.Task, error)
	Delete(ctx context.Context, id model.TaskID) error
}
