package update

import (
	"log/slog"
	"update-depot/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 update routes
type HandlerV1 struct {
	releaseService port.ReleaseService
	logger         *slog.Logger
}

// NewUpdateHandlerV1 creates HandlerV1
func NewUpdateHandlerV1(service port.ReleaseService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		releaseService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/latest", h.LatestV1)
	router.Get("/check", h.CheckUpdateV1)
	router.Get("/download/{storedFilename}", h.DownloadV1)

	return router
}
