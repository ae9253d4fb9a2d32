package port

import (
	"context"
	"time"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
)

// UploadSessionRepository is an interface to interact with upload session repositories
type UploadSessionRepository interface {
	Create(ctx context.Context, session domain.UploadSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error)
	// RecordChunk marks a chunk index as received. Recording the same index
	// twice is idempotent: the set of received indices does not grow, the
	// stored size is replaced.
	RecordChunk(ctx context.Context, id uuid.UUID, chunkIndex int, sizeBytes int64) error
	CountReceived(ctx context.Context, id uuid.UUID) (int, error)
	ReceivedIndices(ctx context.Context, id uuid.UUID) ([]int, error)
	// Delete removes the session and its chunk bookkeeping. Deleting a
	// missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	FindAllExpired(ctx context.Context, cutoff time.Time) ([]domain.UploadSession, error)
}
