package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
)

type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// SignUp hashes the password and persists a new user.
func (a *Auth) SignUp(ctx context.Context, email, password string) (model.User, error) {
	a.logger.Debug("Auth service: starting user signup",
		"email", email)

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != 0 {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, apierrors.NewErrEmailIsTaken(email)
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Email: email,
		Hash:  digest,
	})
	if err != nil {
		// The unique constraint can still fire between the pre-check
		// and the insert.
		if errors.Is(err, model.ErrDuplicate) {
			return model.User{}, apierrors.NewErrEmailIsTaken(email)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user signup completed",
		"email", email,
		"user_id", user.ID)

	return user, nil
}

// SignIn verifies credentials and issues an access token. Unknown email
// and wrong password produce the identical error.
func (a *Auth) SignIn(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: starting user signin",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(user.Hash, password)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", apierrors.NewErrInvalidCredentials()
	}

	accessToken, err := a.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to generate access token",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: user signin completed",
		"email", email,
		"user_id", user.ID)

	return accessToken, nil
}
