package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
)

// AuthService defines user signup and signin operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (model.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// newUserResponse maps a user record to its response shape. The
// password digest never crosses this boundary.
func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// SignUp registers a new account.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := validateEmail(req.Email); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if req.Password == "" {
		handleError(w, h.logger, apierrors.NewErrValidation("password must not be empty"))
		return
	}

	user, err := h.authService.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: signup completed",
		"email", req.Email,
		"user_id", user.ID)

	respondJSON(w, http.StatusCreated, newUserResponse(user))
}

// SignIn exchanges credentials for an access token.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := validateEmail(req.Email); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if req.Password == "" {
		handleError(w, h.logger, apierrors.NewErrValidation("password must not be empty"))
		return
	}

	accessToken, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: signin failed",
			"email", req.Email)
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: signin completed",
		"email", req.Email)

	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken})
}
