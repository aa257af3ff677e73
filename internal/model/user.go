package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, params UpdateUserParams) (User, error)
}

// User represents a stored user with authentication material.
// Hash is the password digest and must never reach a response body.
type User struct {
	ID        int64
	Email     string
	Hash      string
	FirstName *string
	LastName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateUserParams describes a partial profile update.
// Nil fields are left unchanged.
type UpdateUserParams struct {
	ID        int64
	Email     *string
	FirstName *string
	LastName  *string
}
