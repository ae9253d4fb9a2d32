package cleanup

import (
	"context"
	"time"
)

// CleanupExpiredSessions deletes sessions created before cutoff together
// with their chunk blobs. Abandoned uploads otherwise accumulate forever.
// A failure on one session is logged and does not stop the sweep.
func (c *cleanupService) CleanupExpiredSessions(ctx context.Context, cutoff time.Time) error {

	sessions, err := c.uow.UploadSessionRepo().FindAllExpired(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, session := range sessions {

		if err := c.storage.DeleteChunks(ctx, session.ID); err != nil {
			c.logger.Error("failed to delete chunk files for expired session",
				"session_id", session.ID, "error", err)
			continue
		}

		if err := c.uow.UploadSessionRepo().Delete(ctx, session.ID); err != nil {
			c.logger.Error("failed to delete expired session",
				"session_id", session.ID, "error", err)
		}
	}

	c.logger.Info("expired session cleanup completed", "sessions", len(sessions))
	return nil
}
