package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"update-depot/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1StatusResponse is the response to a session status query
type V1StatusResponse struct {
	ReceivedCount   int     `json:"receivedCount"`
	TotalChunks     int     `json:"totalChunks"`
	ProgressPercent float64 `json:"progressPercent"`
}

func (h *HandlerV1) StatusV1(w http.ResponseWriter, r *http.Request) {
	sessionID, parseErr := uuid.Parse(chi.URLParam(r, "sessionID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	received, total, progress, statusErr := h.uploadService.Status(r.Context(), sessionID)

	switch {
	case errors.Is(statusErr, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case statusErr != nil:
		h.logger.Error("error getting session status", "session_id", sessionID, "error", statusErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1StatusResponse{
			ReceivedCount:   received,
			TotalChunks:     total,
			ProgressPercent: progress,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
