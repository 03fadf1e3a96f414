package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
)

// UserUseCase handles user directory operations
type UserUseCase struct {
	repo interfaces.Repository
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if user.JoinDate == "" {
		user.JoinDate = time.Now().Format(model.DateLayout)
	}

	created, err := uc.repo.User().Create(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user", goerr.V("email", user.Email))
	}
	return created, nil
}

func (uc *UserUseCase) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
	}
	return user, nil
}

func (uc *UserUseCase) List(ctx context.Context) ([]*model.User, error) {
	users, err := uc.repo.User().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (uc *UserUseCase) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.User().Update(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, user.ID))
	}
	return updated, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id model.UserID) error {
	if err := uc.repo.User().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
	}
	return nil
}
