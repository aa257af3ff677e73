package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
)

type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *User) GetByID(ctx context.Context, id int64) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound(id)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Update applies a partial profile update for the caller's own record.
func (s *User) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	s.logger.Debug("User service: updating profile",
		"user_id", params.ID)

	user, err := s.userStore.Update(ctx, params)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound(params.ID)
	}
	if errors.Is(err, model.ErrDuplicate) {
		// Only the email column carries a unique constraint.
		email := ""
		if params.Email != nil {
			email = *params.Email
		}
		return model.User{}, apierrors.NewErrEmailIsTaken(email)
	}
	if err != nil {
		s.logger.Error("User service: failed to update profile",
			"user_id", params.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: profile updated",
		"user_id", user.ID)

	return user, nil
}
