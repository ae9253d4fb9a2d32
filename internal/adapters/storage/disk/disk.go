package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
)

const (
	sessionsDir  = "sessions"
	artifactsDir = "artifacts"
)

// Adapter stores chunk and artifact blobs on the local filesystem: chunks
// under <root>/sessions/<sessionID>/<index>.part, artifacts under
// <root>/artifacts/<storedFilename>.
type Adapter struct {
	root   string
	logger *slog.Logger
}

// NewAdapter returns Adapter, creating the directory layout if needed
func NewAdapter(root string, logger *slog.Logger) (*Adapter, error) {
	for _, dir := range []string{
		filepath.Join(root, sessionsDir),
		filepath.Join(root, artifactsDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}
	return &Adapter{root: root, logger: logger}, nil
}

func (a *Adapter) sessionDir(sessionID uuid.UUID) string {
	return filepath.Join(a.root, sessionsDir, sessionID.String())
}

func (a *Adapter) chunkPath(sessionID uuid.UUID, index int) string {
	return filepath.Join(a.sessionDir(sessionID), fmt.Sprintf("%06d.part", index))
}

// artifactPath flattens the name to its base so a crafted stored filename
// cannot escape the artifacts directory.
func (a *Adapter) artifactPath(name string) string {
	return filepath.Join(a.root, artifactsDir, filepath.Base(name))
}

// WriteChunk writes the chunk to a temp file and renames it into place, so
// a concurrent re-upload of the same index never leaves torn bytes and the
// newer upload wins.
func (a *Adapter) WriteChunk(ctx context.Context, sessionID uuid.UUID, chunkIndex int, r io.Reader) (int64, error) {
	dir := a.sessionDir(sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fmt.Sprintf("%06d-*.tmp", chunkIndex))
	if err != nil {
		return 0, fmt.Errorf("failed to create chunk temp file: %w", err)
	}

	written, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to write chunk: %w", err)
	}
	if written == 0 {
		// an empty body must never replace bytes already stored for this index
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, domain.ErrEmptyChunk
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to close chunk temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), a.chunkPath(sessionID, chunkIndex)); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to place chunk file: %w", err)
	}

	return written, nil
}

// MergeChunks concatenates the chunk files in the given order into a new
// artifact file. The caller passes indices sorted ascending; this function
// preserves whatever order it is handed. On any failure the partially
// written destination is removed.
func (a *Adapter) MergeChunks(ctx context.Context, sessionID uuid.UUID, orderedIndices []int, destName string) (int64, error) {
	destPath := a.artifactPath(destName)

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to create artifact file: %w", err)
	}

	var total int64
	for _, index := range orderedIndices {
		src, err := os.Open(a.chunkPath(sessionID, index))
		if err != nil {
			dest.Close()
			os.Remove(destPath)
			if errors.Is(err, fs.ErrNotExist) {
				return 0, fmt.Errorf("%w: chunk %d", domain.ErrChunkMissing, index)
			}
			return 0, fmt.Errorf("failed to open chunk %d: %w", index, err)
		}

		n, err := io.Copy(dest, src)
		src.Close()
		if err != nil {
			dest.Close()
			os.Remove(destPath)
			return 0, fmt.Errorf("failed to append chunk %d: %w", index, err)
		}
		total += n
	}

	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return 0, fmt.Errorf("failed to close artifact file: %w", err)
	}

	return total, nil
}

// DeleteChunks removes the session's chunk directory
func (a *Adapter) DeleteChunks(ctx context.Context, sessionID uuid.UUID) error {
	return os.RemoveAll(a.sessionDir(sessionID))
}

// OpenArtifact opens an artifact blob for reading and reports its size
func (a *Adapter) OpenArtifact(ctx context.Context, storedFilename string) (io.ReadCloser, int64, error) {
	f, err := os.Open(a.artifactPath(storedFilename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, domain.ErrArtifactNotFound
		}
		return nil, 0, fmt.Errorf("failed to open artifact: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat artifact: %w", err)
	}

	return f, info.Size(), nil
}

// DeleteArtifact removes an artifact blob; already-gone is fine
func (a *Adapter) DeleteArtifact(ctx context.Context, storedFilename string) error {
	err := os.Remove(a.artifactPath(storedFilename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
