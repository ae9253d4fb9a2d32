package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"update-depot/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1UploadChunkResponse is the response to upload one chunk
type V1UploadChunkResponse struct {
	ChunkIndex    int `json:"chunkIndex"`
	ReceivedCount int `json:"receivedCount"`
	TotalChunks   int `json:"totalChunks"`
}

// UploadChunkV1 accepts one chunk's raw bytes as the request body
func (h *HandlerV1) UploadChunkV1(w http.ResponseWriter, r *http.Request) {
	sessionID, parseErr := uuid.Parse(chi.URLParam(r, "sessionID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	chunkIndex, parseErr := strconv.Atoi(chi.URLParam(r, "chunkIndex"))
	if parseErr != nil {
		http.Error(w, "chunk index must be an integer", http.StatusBadRequest)
		return
	}

	if r.Body == nil || r.ContentLength == 0 {
		http.Error(w, "chunk body is empty", http.StatusBadRequest)
		return
	}

	received, total, chunkErr := h.uploadService.RecordChunk(r.Context(), sessionID, chunkIndex, r.Body)

	switch {
	case errors.Is(chunkErr, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(chunkErr, domain.ErrInvalidChunkIndex), errors.Is(chunkErr, domain.ErrEmptyChunk):
		http.Error(w, chunkErr.Error(), http.StatusBadRequest)
		return
	case chunkErr != nil:
		h.logger.Error("error recording chunk", "session_id", sessionID, "chunk_index", chunkIndex, "error", chunkErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1UploadChunkResponse{
			ChunkIndex:    chunkIndex,
			ReceivedCount: received,
			TotalChunks:   total,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
