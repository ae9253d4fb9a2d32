package port

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// FileStorage is an interface to define blob storage interactions: temporary
// chunk blobs keyed by session and index, and published artifact blobs keyed
// by stored filename.
type FileStorage interface {
	// WriteChunk persists one chunk's bytes, atomically replacing any prior
	// bytes for the same index (last write wins). Returns the byte count.
	WriteChunk(ctx context.Context, sessionID uuid.UUID, chunkIndex int, r io.Reader) (int64, error)
	// MergeChunks concatenates the session's chunk blobs in exactly the
	// given order into a fresh artifact blob and returns its size. A chunk
	// blob that is absent yields domain.ErrChunkMissing and no destination
	// blob is left behind.
	MergeChunks(ctx context.Context, sessionID uuid.UUID, orderedIndices []int, destName string) (int64, error)
	DeleteChunks(ctx context.Context, sessionID uuid.UUID) error
	OpenArtifact(ctx context.Context, storedFilename string) (io.ReadCloser, int64, error)
	// DeleteArtifact removes an artifact blob; a missing blob is not an error.
	DeleteArtifact(ctx context.Context, storedFilename string) error
}
