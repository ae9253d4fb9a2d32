package update

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"update-depot/internal/core/domain"
)

// V1LatestResponse is the response describing the current artifact
type V1LatestResponse struct {
	CurrentVersion string    `json:"currentVersion"`
	MinVersion     string    `json:"minVersion"`
	DownloadURL    string    `json:"downloadUrl"`
	UploadDate     time.Time `json:"uploadDate"`
	FileSize       int64     `json:"fileSize"`
}

func (h *HandlerV1) LatestV1(w http.ResponseWriter, r *http.Request) {

	record, downloadURL, err := h.releaseService.Current(r.Context())

	switch {
	case errors.Is(err, domain.ErrNoArtifactPublished):
		http.Error(w, "no artifact published", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting current artifact", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	case record == nil:
		h.logger.Error("artifact record is nil")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1LatestResponse{
			CurrentVersion: record.CurrentVersion,
			MinVersion:     record.MinVersion,
			DownloadURL:    downloadURL,
			UploadDate:     record.UploadedAt,
			FileSize:       record.SizeBytes,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
