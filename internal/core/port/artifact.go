package port

import (
	"context"
	"update-depot/internal/core/domain"
)

// ArtifactRepository is an interface to interact with the append-only artifact catalog
type ArtifactRepository interface {
	// Create appends a new record and returns its identity. The record
	// atomically becomes current once the surrounding transaction commits.
	Create(ctx context.Context, record domain.ArtifactRecord) (int64, error)
	// Current returns the most recently inserted record, or
	// domain.ErrNoArtifactPublished when the catalog is empty.
	Current(ctx context.Context) (*domain.ArtifactRecord, error)
	// FindCurrentByStoredFilename matches against the current record only;
	// filenames of superseded records return domain.ErrArtifactNotFound.
	FindCurrentByStoredFilename(ctx context.Context, storedFilename string) (*domain.ArtifactRecord, error)
}
