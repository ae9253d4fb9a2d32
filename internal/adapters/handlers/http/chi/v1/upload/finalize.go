package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"update-depot/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1FinalizeResponse is the response to a successful finalize
type V1FinalizeResponse struct {
	CurrentVersion string    `json:"currentVersion"`
	MinVersion     string    `json:"minVersion"`
	OriginalName   string    `json:"originalName"`
	UploadDate     time.Time `json:"uploadDate"`
}

func (h *HandlerV1) FinalizeV1(w http.ResponseWriter, r *http.Request) {
	sessionID, parseErr := uuid.Parse(chi.URLParam(r, "sessionID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	record, finalizeErr := h.uploadService.Finalize(r.Context(), sessionID)

	var incomplete *domain.IncompleteUploadError
	switch {
	case errors.Is(finalizeErr, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.As(finalizeErr, &incomplete):
		http.Error(w, incomplete.Error(), http.StatusBadRequest)
		return
	case errors.Is(finalizeErr, domain.ErrCorruptSession):
		// Chunks can be re-uploaded and the finalize retried.
		http.Error(w, finalizeErr.Error(), http.StatusConflict)
		return
	case finalizeErr != nil:
		h.logger.Error("error finalizing upload", "session_id", sessionID, "error", finalizeErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	case record == nil:
		h.logger.Error("artifact record is nil", "session_id", sessionID)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1FinalizeResponse{
			CurrentVersion: record.CurrentVersion,
			MinVersion:     record.MinVersion,
			OriginalName:   record.OriginalName,
			UploadDate:     record.UploadedAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
