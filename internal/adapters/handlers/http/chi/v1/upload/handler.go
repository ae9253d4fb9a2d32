package upload

import (
	"log/slog"
	"update-depot/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/session", h.InitSessionV1)
	router.Post("/session/{sessionID}/chunk/{chunkIndex}", h.UploadChunkV1)
	router.Get("/session/{sessionID}/status", h.StatusV1)
	router.Post("/session/{sessionID}/finalize", h.FinalizeV1)

	return router
}
