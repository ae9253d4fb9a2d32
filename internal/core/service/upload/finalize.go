package upload

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/port"

	"github.com/google/uuid"
)

// Finalize merges a complete session's chunks into a single artifact and
// publishes it as the new current catalog entry. The ordering is: merge the
// new blob, then transactionally insert the record and delete the session,
// then best-effort delete the chunk blobs and the superseded artifact blob.
// The catalog never depends on any of the deletions succeeding.
func (s *uploadService) Finalize(ctx context.Context, sessionID uuid.UUID) (*domain.ArtifactRecord, error) {

	session, err := s.uow.UploadSessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	indices, err := s.uow.UploadSessionRepo().ReceivedIndices(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not load chunk bookkeeping: %w", err)
	}

	if len(indices) != session.TotalChunks {
		return nil, &domain.IncompleteUploadError{Received: len(indices), Total: session.TotalChunks}
	}

	// Chunks must be concatenated in ascending index order, not arrival
	// order, to reconstruct the artifact byte-for-byte.
	sort.Ints(indices)

	record := domain.ArtifactRecord{
		CurrentVersion: session.CurrentVersion,
		MinVersion:     session.MinVersion,
		// The random token keeps same-millisecond publishes of the same
		// original name from sharing a blob path.
		StoredFilename: fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), uuid.NewString()[:8], session.FileName),
		OriginalName:   session.FileName,
		UploadedAt:     time.Now().UTC(),
	}

	mergedSize, err := s.storage.MergeChunks(ctx, sessionID, indices, record.StoredFilename)
	if err != nil {
		if errors.Is(err, domain.ErrChunkMissing) {
			// Session kept intact so the client can re-upload the
			// affected chunks and retry.
			return nil, fmt.Errorf("%w: %s", domain.ErrCorruptSession, err)
		}
		return nil, fmt.Errorf("could not merge chunks: %w", err)
	}
	record.SizeBytes = mergedSize

	var previous *domain.ArtifactRecord
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		// A finalize that already published deleted the session; the
		// re-check inside the transaction turns a second call into a
		// clean SessionNotFound instead of a duplicate publish.
		if _, err := uow.UploadSessionRepo().FindByID(ctx, sessionID); err != nil {
			return err
		}

		prev, err := uow.ArtifactRepo().Current(ctx)
		if err != nil && !errors.Is(err, domain.ErrNoArtifactPublished) {
			return err
		}
		previous = prev

		id, err := uow.ArtifactRepo().Create(ctx, record)
		if err != nil {
			return err
		}
		record.ID = id

		return uow.UploadSessionRepo().Delete(ctx, sessionID)
	})
	if txErr != nil {
		if delErr := s.storage.DeleteArtifact(ctx, record.StoredFilename); delErr != nil {
			s.logger.Error("failed to discard merged artifact after aborted publish",
				"stored_filename", record.StoredFilename, "error", delErr)
		}
		return nil, txErr
	}

	// Publish is durable from here on; the rest is disk hygiene.
	if err := s.storage.DeleteChunks(ctx, sessionID); err != nil {
		s.logger.Error("failed to delete chunk files", "session_id", sessionID, "error", err)
	}

	if previous != nil {
		if err := s.storage.DeleteArtifact(ctx, previous.StoredFilename); err != nil {
			s.logger.Error("failed to delete superseded artifact",
				"stored_filename", previous.StoredFilename, "error", err)
		}
	}

	if s.events != nil {
		if err := s.events.PublishReleasePublished(ctx, record); err != nil {
			s.logger.Error("failed to publish release event",
				"version", record.CurrentVersion, "error", err)
		}
	}

	return &record, nil
}
