package interfaces

import (
	"context"

	"github.com/atrium-hq/atrium/pkg/domain/model"
)

// AttendanceRepository defines the interface for AttendanceRecord data access
type AttendanceRepository interface {
	Create(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error)
	Get(ctx context.Context, id model.AttendanceID) (*model.AttendanceRecord, error)
	List(ctx context.Context) ([]*model.AttendanceRecord, error)
	ListByUser(ctx context.Context, userID model.UserID) ([]*model.AttendanceRecord, error)
	Update(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error)
	Delete(ctx context.Context, id model.AttendanceID) error
}
