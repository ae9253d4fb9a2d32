package upload

import (
	"context"
	"fmt"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
)

// InitSession validates the announced upload and creates a session for it
func (s *uploadService) InitSession(ctx context.Context, fileName string, fileSize int64, totalChunks int, currentVersion, minVersion string) (uuid.UUID, error) {

	if fileName == "" || currentVersion == "" || minVersion == "" {
		return uuid.Nil, fmt.Errorf("%w: fileName, currentVersion and minVersion are required", domain.ErrMissingField)
	}

	if fileSize <= 0 || totalChunks <= 0 {
		return uuid.Nil, fmt.Errorf("%w: fileSize and totalChunks must be positive", domain.ErrMissingField)
	}

	if fileSize > s.uploadCfg.MaxFileSize {
		return uuid.Nil, domain.ErrFileSizeTooBig
	}

	if !domain.ValidVersion(currentVersion) || !domain.ValidVersion(minVersion) {
		return uuid.Nil, fmt.Errorf("%w: versions must look like 1.2.3", domain.ErrInvalidVersion)
	}

	if err := s.validateExtension(fileName); err != nil {
		return uuid.Nil, err
	}

	sessionID := uuid.New()
	session := domain.UploadSession{
		ID:             sessionID,
		FileName:       fileName,
		DeclaredSize:   fileSize,
		TotalChunks:    totalChunks,
		CurrentVersion: currentVersion,
		MinVersion:     minVersion,
	}

	if err := s.uow.UploadSessionRepo().Create(ctx, session); err != nil {
		return uuid.Nil, fmt.Errorf("could not create upload session: %w", err)
	}

	return sessionID, nil
}
