package release

import (
	"context"
	"update-depot/internal/core/domain"
)

// Current returns the current catalog entry and its download URL
func (s *releaseService) Current(ctx context.Context) (*domain.ArtifactRecord, string, error) {

	record, err := s.uow.ArtifactRepo().Current(ctx)
	if err != nil {
		return nil, "", err
	}

	return record, s.downloadURL(record), nil
}
