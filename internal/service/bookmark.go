package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
)

type Bookmark struct {
	bookmarkStore model.BookmarkStore
	logger        *logger.Logger
}

func NewBookmark(bookmarkStore model.BookmarkStore, logger *logger.Logger) *Bookmark {
	return &Bookmark{
		bookmarkStore: bookmarkStore,
		logger:        logger,
	}
}

func (s *Bookmark) Create(ctx context.Context, userID int64, params model.CreateBookmarkParams) (model.Bookmark, error) {
	s.logger.Debug("Bookmark service: creating bookmark",
		"user_id", userID)

	bookmark, err := s.bookmarkStore.Create(ctx, model.Bookmark{
		OwnerID:     userID,
		Title:       params.Title,
		Description: params.Description,
		Link:        params.Link,
	})
	if err != nil {
		s.logger.Error("Bookmark service: failed to create bookmark",
			"user_id", userID,
			"error", err.Error())
		return model.Bookmark{}, fmt.Errorf("failed to create bookmark: %w", err)
	}

	s.logger.Info("Bookmark service: bookmark created",
		"user_id", userID,
		"bookmark_id", bookmark.ID)

	return bookmark, nil
}

func (s *Bookmark) List(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	bookmarks, err := s.bookmarkStore.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks by owner id: %w", err)
	}

	return bookmarks, nil
}

func (s *Bookmark) Update(ctx context.Context, userID int64, params model.UpdateBookmarkParams) (model.Bookmark, error) {
	if err := s.checkOwnership(ctx, userID, params.ID); err != nil {
		return model.Bookmark{}, err
	}

	bookmark, err := s.bookmarkStore.Update(ctx, params)
	if errors.Is(err, model.ErrNotFound) {
		return model.Bookmark{}, apierrors.NewErrBookmarkNotFound(params.ID)
	}
	if err != nil {
		s.logger.Error("Bookmark service: failed to update bookmark",
			"user_id", userID,
			"bookmark_id", params.ID,
			"error", err.Error())
		return model.Bookmark{}, fmt.Errorf("failed to update bookmark: %w", err)
	}

	s.logger.Info("Bookmark service: bookmark updated",
		"user_id", userID,
		"bookmark_id", bookmark.ID)

	return bookmark, nil
}

func (s *Bookmark) Delete(ctx context.Context, userID int64, bookmarkID int64) error {
	if err := s.checkOwnership(ctx, userID, bookmarkID); err != nil {
		return err
	}

	err := s.bookmarkStore.Delete(ctx, bookmarkID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrBookmarkNotFound(bookmarkID)
	}
	if err != nil {
		s.logger.Error("Bookmark service: failed to delete bookmark",
			"user_id", userID,
			"bookmark_id", bookmarkID,
			"error", err.Error())
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	s.logger.Info("Bookmark service: bookmark deleted",
		"user_id", userID,
		"bookmark_id", bookmarkID)

	return nil
}

// checkOwnership loads the bookmark and verifies the requester owns it.
// A missing bookmark and a foreign one produce the identical error so
// callers cannot probe for other users' records.
func (s *Bookmark) checkOwnership(ctx context.Context, userID, bookmarkID int64) error {
	bookmark, err := s.bookmarkStore.GetByID(ctx, bookmarkID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrBookmarkNotFound(bookmarkID)
	}
	if err != nil {
		return fmt.Errorf("failed to get bookmark by id: %w", err)
	}

	if bookmark.OwnerID != userID {
		return apierrors.NewErrBookmarkNotFound(bookmarkID)
	}

	return nil
}
