package port

import (
	"context"
	"io"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
)

// UploadService is an interface to define the chunked upload flow
type UploadService interface {
	InitSession(ctx context.Context, fileName string, fileSize int64, totalChunks int, currentVersion, minVersion string) (uuid.UUID, error)
	RecordChunk(ctx context.Context, sessionID uuid.UUID, chunkIndex int, chunk io.Reader) (received int, total int, err error)
	Status(ctx context.Context, sessionID uuid.UUID) (received int, total int, progressPercent float64, err error)
	Finalize(ctx context.Context, sessionID uuid.UUID) (*domain.ArtifactRecord, error)
}
