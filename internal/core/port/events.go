package port

import (
	"context"
	"update-depot/internal/core/domain"
)

// EventPublisher is an interface to define a release event publisher (nats, kafka, ...)
type EventPublisher interface {
	PublishReleasePublished(ctx context.Context, record domain.ArtifactRecord) error
	Close() error
}
