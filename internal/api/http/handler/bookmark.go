package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
)

// BookmarkService defines owner-scoped bookmark operations.
type BookmarkService interface {
	Create(ctx context.Context, userID int64, params model.CreateBookmarkParams) (model.Bookmark, error)
	List(ctx context.Context, userID int64) ([]model.Bookmark, error)
	Update(ctx context.Context, userID int64, params model.UpdateBookmarkParams) (model.Bookmark, error)
	Delete(ctx context.Context, userID int64, bookmarkID int64) error
}

// Bookmark handles HTTP endpoints for bookmark management.
type Bookmark struct {
	bookmarkService BookmarkService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewBookmark creates a new Bookmark handler.
func NewBookmark(bookmarkService BookmarkService, contextManager model.ContextManager, logger *logger.Logger) *Bookmark {
	return &Bookmark{
		bookmarkService: bookmarkService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type createBookmarkRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        string  `json:"link"`
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

type bookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newBookmarkResponse(bookmark model.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          bookmark.ID,
		UserID:      bookmark.OwnerID,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		Link:        bookmark.Link,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}
}

// Create stores a new bookmark owned by the caller.
func (h *Bookmark) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	var req createBookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if req.Title == "" {
		handleError(w, h.logger, apierrors.NewErrValidation("title must not be empty"))
		return
	}
	if req.Link == "" {
		handleError(w, h.logger, apierrors.NewErrValidation("link must not be empty"))
		return
	}

	bookmark, err := h.bookmarkService.Create(r.Context(), user.ID, model.CreateBookmarkParams{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.logger.Error("Bookmark handler: create failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, newBookmarkResponse(bookmark))
}

// List returns every bookmark owned by the caller.
func (h *Bookmark) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	bookmarks, err := h.bookmarkService.List(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Bookmark handler: list failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	response := make([]bookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		response = append(response, newBookmarkResponse(bookmark))
	}

	respondJSON(w, http.StatusOK, response)
}

// Update applies a partial update to a bookmark the caller owns.
func (h *Bookmark) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	bookmarkID, err := bookmarkIDParam(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req updateBookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if req.Title != nil && *req.Title == "" {
		handleError(w, h.logger, apierrors.NewErrValidation("title must not be empty"))
		return
	}
	if req.Link != nil && *req.Link == "" {
		handleError(w, h.logger, apierrors.NewErrValidation("link must not be empty"))
		return
	}

	bookmark, err := h.bookmarkService.Update(r.Context(), user.ID, model.UpdateBookmarkParams{
		ID:          bookmarkID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, newBookmarkResponse(bookmark))
}

// Delete removes a bookmark the caller owns.
func (h *Bookmark) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	bookmarkID, err := bookmarkIDParam(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.bookmarkService.Delete(r.Context(), user.ID, bookmarkID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func bookmarkIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apierrors.NewErrValidation("invalid bookmark id")
	}
	return id, nil
}
