package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup of abandoned upload sessions
type CleanupService interface {
	CleanupExpiredSessions(ctx context.Context, cutoff time.Time) error
}
