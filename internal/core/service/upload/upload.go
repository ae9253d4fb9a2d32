package upload

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"update-depot/internal/config"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/port"
)

type uploadService struct {
	uow       port.UnitOfWork
	storage   port.FileStorage
	events    port.EventPublisher
	uploadCfg config.UploadConfig
	logger    *slog.Logger
}

// NewUploadService creates a new upload service. events may be nil when no
// broker is configured.
func NewUploadService(uow port.UnitOfWork, storage port.FileStorage, events port.EventPublisher, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		uow:       uow,
		storage:   storage,
		events:    events,
		uploadCfg: cfg,
		logger:    logger,
	}
}

func (s *uploadService) validateExtension(fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return fmt.Errorf("%w: no file extension found", domain.ErrInvalidExtension)
	}

	for _, allowed := range s.uploadCfg.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (expected one of: %v)",
		domain.ErrInvalidExtension, ext, s.uploadCfg.AllowedExtensions,
	)
}
