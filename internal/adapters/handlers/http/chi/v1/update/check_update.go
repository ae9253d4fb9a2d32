package update

import (
	"encoding/json"
	"errors"
	"net/http"
	"update-depot/internal/core/domain"
)

// V1CheckUpdateResponse is the update decision for one client.
// DownloadURL is null unless an update is available.
type V1CheckUpdateResponse struct {
	NeedsUpdate    bool    `json:"needsUpdate"`
	HasUpdate      bool    `json:"hasUpdate"`
	CurrentVersion string  `json:"currentVersion"`
	MinVersion     string  `json:"minVersion"`
	DownloadURL    *string `json:"downloadUrl"`
}

// CheckUpdateV1 answers whether the client on ?version= must or may update
func (h *HandlerV1) CheckUpdateV1(w http.ResponseWriter, r *http.Request) {
	clientVersion := r.URL.Query().Get("version")

	decision, err := h.releaseService.CheckUpdate(r.Context(), clientVersion)

	switch {
	case errors.Is(err, domain.ErrMissingField), errors.Is(err, domain.ErrInvalidVersion):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrNoArtifactPublished):
		http.Error(w, "no artifact published", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error checking update", "client_version", clientVersion, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	case decision == nil:
		h.logger.Error("update decision is nil")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1CheckUpdateResponse{
			NeedsUpdate:    decision.NeedsUpdate,
			HasUpdate:      decision.HasUpdate,
			CurrentVersion: decision.CurrentVersion,
			MinVersion:     decision.MinVersion,
		}
		if decision.DownloadURL != "" {
			resp.DownloadURL = &decision.DownloadURL
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
