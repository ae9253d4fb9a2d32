package port

import (
	"context"
	"io"
	"update-depot/internal/core/domain"
)

// ReleaseService is an interface to define the read side of the catalog:
// current version lookup, update decisions and artifact download.
type ReleaseService interface {
	Current(ctx context.Context) (*domain.ArtifactRecord, string, error)
	CheckUpdate(ctx context.Context, clientVersion string) (*domain.UpdateDecision, error)
	Download(ctx context.Context, storedFilename string) (io.ReadCloser, *domain.ArtifactRecord, error)
}
