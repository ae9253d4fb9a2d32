package upload

import (
	"context"
	"fmt"
	"io"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
)

// RecordChunk persists one chunk's bytes and marks the index as received.
// Re-uploading an index is idempotent: the received count does not grow and
// the newer bytes replace the prior ones.
func (s *uploadService) RecordChunk(ctx context.Context, sessionID uuid.UUID, chunkIndex int, chunk io.Reader) (int, int, error) {

	session, err := s.uow.UploadSessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		return 0, 0, err
	}

	if chunkIndex < 0 || chunkIndex >= session.TotalChunks {
		return 0, 0, fmt.Errorf("%w: %d not in [0, %d)", domain.ErrInvalidChunkIndex, chunkIndex, session.TotalChunks)
	}

	written, err := s.storage.WriteChunk(ctx, sessionID, chunkIndex, chunk)
	if err != nil {
		return 0, 0, fmt.Errorf("could not store chunk %d: %w", chunkIndex, err)
	}
	if written == 0 {
		return 0, 0, domain.ErrEmptyChunk
	}

	if err := s.uow.UploadSessionRepo().RecordChunk(ctx, sessionID, chunkIndex, written); err != nil {
		return 0, 0, fmt.Errorf("could not record chunk %d: %w", chunkIndex, err)
	}

	received, err := s.uow.UploadSessionRepo().CountReceived(ctx, sessionID)
	if err != nil {
		return 0, 0, fmt.Errorf("could not count received chunks: %w", err)
	}

	return received, session.TotalChunks, nil
}
