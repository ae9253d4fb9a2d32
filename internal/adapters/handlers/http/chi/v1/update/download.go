package update

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"update-depot/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// DownloadV1 streams the current artifact as an attachment. Requesting the
// filename of a superseded record returns 404; only the latest artifact is
// ever served.
func (h *HandlerV1) DownloadV1(w http.ResponseWriter, r *http.Request) {
	storedFilename := chi.URLParam(r, "storedFilename")
	if storedFilename == "" {
		http.Error(w, "stored filename is required", http.StatusBadRequest)
		return
	}

	reader, record, err := h.releaseService.Download(r.Context(), storedFilename)

	switch {
	case errors.Is(err, domain.ErrArtifactNotFound), errors.Is(err, domain.ErrNoArtifactPublished):
		http.Error(w, "artifact not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error opening artifact for download", "stored_filename", storedFilename, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	case reader == nil || record == nil:
		h.logger.Error("download response has nil values", "stored_filename", storedFilename)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		defer reader.Close()

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.OriginalName))
		w.Header().Set("Content-Length", strconv.FormatInt(record.SizeBytes, 10))
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, reader); err != nil {
			h.logger.Error("error streaming artifact", "stored_filename", storedFilename, "error", err)
		}
		return
	}
}
