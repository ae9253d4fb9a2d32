package release

import (
	"context"
	"fmt"
	"io"
	"update-depot/internal/core/domain"
)

// Download streams the current artifact. Only the filename of the current
// catalog record is served; filenames of superseded records come back as
// not found.
func (s *releaseService) Download(ctx context.Context, storedFilename string) (io.ReadCloser, *domain.ArtifactRecord, error) {

	record, err := s.uow.ArtifactRepo().FindCurrentByStoredFilename(ctx, storedFilename)
	if err != nil {
		return nil, nil, err
	}

	reader, _, err := s.storage.OpenArtifact(ctx, storedFilename)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: artifact data unavailable: %s", domain.ErrArtifactNotFound, err)
	}

	return reader, record, nil
}
