package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dsemenov/linkmark/internal/model"
)

var _ model.BookmarkStore = (*BookmarkRepository)(nil)

type BookmarkRepository struct {
	db *Connection
}

func NewBookmarkRepository(db *Connection) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
	}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	query := `INSERT INTO bookmarks (owner_id, title, description, link)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, owner_id, title, description, link, created_at, updated_at`

	var saved model.Bookmark
	err := r.db.QueryRow(ctx, query,
		bookmark.OwnerID, bookmark.Title, bookmark.Description, bookmark.Link,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Title, &saved.Description, &saved.Link,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return saved, nil
}

func (r *BookmarkRepository) GetByID(ctx context.Context, id int64) (model.Bookmark, error) {
	var bookmark model.Bookmark
	query := `SELECT id, owner_id, title, description, link, created_at, updated_at
			  FROM bookmarks WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookmark.ID, &bookmark.OwnerID, &bookmark.Title, &bookmark.Description,
		&bookmark.Link, &bookmark.CreatedAt, &bookmark.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bookmark{}, model.ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("failed to get bookmark by id: %w", err)
	}

	return bookmark, nil
}

func (r *BookmarkRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]model.Bookmark, error) {
	query := `SELECT id, owner_id, title, description, link, created_at, updated_at
			  FROM bookmarks WHERE owner_id = $1
			  ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks by owner id: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]model.Bookmark, 0)
	for rows.Next() {
		var bookmark model.Bookmark
		err := rows.Scan(
			&bookmark.ID, &bookmark.OwnerID, &bookmark.Title, &bookmark.Description,
			&bookmark.Link, &bookmark.CreatedAt, &bookmark.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *BookmarkRepository) Update(ctx context.Context, params model.UpdateBookmarkParams) (model.Bookmark, error) {
	query := `UPDATE bookmarks
			  SET title = COALESCE($2, title),
			      description = COALESCE($3, description),
			      link = COALESCE($4, link),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, owner_id, title, description, link, created_at, updated_at`

	var saved model.Bookmark
	err := r.db.QueryRow(ctx, query,
		params.ID, params.Title, params.Description, params.Link,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Title, &saved.Description, &saved.Link,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bookmark{}, model.ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("failed to update bookmark: %w", err)
	}

	return saved, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM bookmarks WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
