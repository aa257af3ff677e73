package model

import (
	"context"
	"time"
)

// BookmarkStore defines persistence operations for bookmarks.
type BookmarkStore interface {
	Create(ctx context.Context, bookmark Bookmark) (Bookmark, error)
	GetByID(ctx context.Context, id int64) (Bookmark, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]Bookmark, error)
	Update(ctx context.Context, params UpdateBookmarkParams) (Bookmark, error)
	Delete(ctx context.Context, id int64) error
}

// Bookmark represents a stored bookmark entity. OwnerID is immutable
// after creation.
type Bookmark struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description *string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateBookmarkParams contains parameters to create a bookmark.
type CreateBookmarkParams struct {
	Title       string
	Description *string
	Link        string
}

// UpdateBookmarkParams describes a partial bookmark update.
// Nil fields are left unchanged.
type UpdateBookmarkParams struct {
	ID          int64
	Title       *string
	Description *string
	Link        *string
}
