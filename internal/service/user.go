package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/errs"
	"github.com/deppfellow/go-eventbooking/internal/metrics"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/repository"
	"github.com/rs/zerolog"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func userNotFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("User %d not found", id), true, codePtr("USER_NOT_FOUND"))
}

func (s *UserService) GetUsers(ctx context.Context) ([]model.User, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userNotFound(id)
	}
	return user, nil
}

func (s *UserService) SearchUsers(ctx context.Context, name string) ([]model.User, error) {
	return s.users.Search(ctx, name)
}

func (s *UserService) GetUsersByStatus(ctx context.Context, active bool) ([]model.User, error) {
	return s.users.GetByStatus(ctx, active)
}

func (s *UserService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user, err := s.users.Create(ctx, &model.User{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	metrics.EntitiesCreated.WithLabelValues(metrics.EntityUser).Inc()
	zerolog.Ctx(ctx).Info().
		Str("event", "user_created").
		Int64("user_id", user.ID).
		Msg("user created")

	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, patch model.UserPatch) error {
	ok, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if !ok {
		return userNotFound(id)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return userNotFound(id)
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "user_deleted").
		Int64("user_id", id).
		Msg("user deleted")
	return nil
}
