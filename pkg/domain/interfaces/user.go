package interfaces

import (
	"context"

	"github.com/atrium-hq/atrium/pkg/domain/model"
)

// UserRepository defines the interface for User data access
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, id model.UserID) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Delete(ctx context.Context, id model.UserID) error
}
