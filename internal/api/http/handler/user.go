package handler

import (
	"context"
	"net/http"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
)

// UserService defines profile operations.
type UserService interface {
	Update(ctx context.Context, params model.UpdateUserParams) (model.User, error)
}

// User handles HTTP endpoints for the current user's profile.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type updateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// GetMe returns the guard-resolved user record.
func (h *User) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	respondJSON(w, http.StatusOK, newUserResponse(user))
}

// Update applies a partial profile update for the caller.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			handleError(w, h.logger, err)
			return
		}
	}

	updated, err := h.userService.Update(r.Context(), model.UpdateUserParams{
		ID:        user.ID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Error("User handler: profile update failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("User handler: profile updated",
		"user_id", user.ID)

	respondJSON(w, http.StatusOK, newUserResponse(updated))
}
