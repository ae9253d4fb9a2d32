package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
)

// V1InitSessionRequest is the request to announce a chunked upload
type V1InitSessionRequest struct {
	FileName       string `json:"fileName"`
	FileSize       int64  `json:"fileSize"`
	TotalChunks    int    `json:"totalChunks"`
	CurrentVersion string `json:"currentVersion"`
	MinVersion     string `json:"minVersion"`
}

// V1InitSessionResponse is the response to announce a chunked upload
type V1InitSessionResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
}

func (h *HandlerV1) InitSessionV1(w http.ResponseWriter, r *http.Request) {
	var req V1InitSessionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.logger.Error("error decoding init session request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID, initErr := h.uploadService.InitSession(r.Context(), req.FileName, req.FileSize, req.TotalChunks, req.CurrentVersion, req.MinVersion)

	switch {
	case errors.Is(initErr, domain.ErrMissingField),
		errors.Is(initErr, domain.ErrInvalidVersion),
		errors.Is(initErr, domain.ErrInvalidExtension),
		errors.Is(initErr, domain.ErrFileSizeTooBig):
		http.Error(w, initErr.Error(), http.StatusBadRequest)
		return
	case initErr != nil:
		h.logger.Error("error creating upload session", "error", initErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1InitSessionResponse{
			SessionID: sessionID,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
