package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
)

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	ParseAccessToken(token string) (int64, error)
}

// UserResolver loads the current user record by ID.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (model.User, error)
}

// Authenticate validates bearer tokens, re-resolves the user record and
// injects it into the request context before any handler runs.
type Authenticate struct {
	tokens         TokenParser
	users          UserResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, users UserResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, users: users, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and calls
// the next handler with the resolved user on the context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, authErr := m.authenticateUser(r)
		if authErr != nil {
			respondUnauthorized(w, authErr)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateUser(r *http.Request) (model.User, *apierrors.APIError) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return model.User{}, apierrors.NewErrMissingAuthorizationToken()
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	userID, err := m.tokens.ParseAccessToken(tokenString)
	if err != nil {
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	user, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		// The token subject may point at a user that no longer exists.
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	return user, nil
}

func respondUnauthorized(w http.ResponseWriter, apiErr *apierrors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	_, _ = w.Write([]byte(`{"message":"` + apiErr.Message + `"}`))
}
