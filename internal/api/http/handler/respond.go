package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already out, nothing sensible left to do.
		return
	}
}

// handleError translates an error into exactly one HTTP response.
// APIError values carry their own status; everything else is a 500.
func handleError(w http.ResponseWriter, lg *logger.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondJSON(w, apiErr.Status, errorResponse{Message: apiErr.Message})
		return
	}

	lg.Error("HTTP handler: unexpected error",
		"error", err.Error())
	respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}
