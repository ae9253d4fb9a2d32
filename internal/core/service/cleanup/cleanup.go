package cleanup

import (
	"log/slog"
	"update-depot/internal/core/port"
)

type cleanupService struct {
	uow     port.UnitOfWork
	storage port.FileStorage
	logger  *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(uow port.UnitOfWork, storage port.FileStorage, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:     uow,
		storage: storage,
		logger:  logger,
	}
}
