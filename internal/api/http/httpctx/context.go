package httpctx

import (
	"context"

	"github.com/dsemenov/linkmark/internal/model"
)

type contextKey int

// userKey is the context key under which the authenticated user is stored.
const userKey contextKey = iota

// Manager stores and retrieves the authenticated user on request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the resolved user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the resolved user from the context.
// The boolean reports whether a user was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
