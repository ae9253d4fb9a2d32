package minio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"update-depot/internal/config"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is a blob-store implementation of FileStorage backed by minio.
// Chunks live under sessions/<sessionID>/<index>.part, artifacts under
// artifacts/<storedFilename>.
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

func chunkKey(sessionID uuid.UUID, index int) string {
	return fmt.Sprintf("sessions/%s/%06d.part", sessionID, index)
}

func sessionPrefix(sessionID uuid.UUID) string {
	return fmt.Sprintf("sessions/%s/", sessionID)
}

func artifactKey(name string) string {
	return "artifacts/" + name
}

// WriteChunk stores one chunk object; object overwrite gives last-write-wins.
// The stream is peeked first: an empty body must never overwrite an already
// stored chunk object.
func (a *Adapter) WriteChunk(ctx context.Context, sessionID uuid.UUID, chunkIndex int, r io.Reader) (int64, error) {
	buffered := bufio.NewReader(r)
	if _, err := buffered.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, domain.ErrEmptyChunk
		}
		return 0, fmt.Errorf("failed to read chunk body: %w", err)
	}

	info, err := a.client.PutObject(ctx, a.config.BucketName, chunkKey(sessionID, chunkIndex), buffered, -1, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to store chunk object: %w", err)
	}
	return info.Size, nil
}

// MergeChunks streams the chunk objects in the given order into a single
// artifact object through a pipe. Each chunk is stat'ed first so a missing
// object surfaces as domain.ErrChunkMissing before any bytes move.
func (a *Adapter) MergeChunks(ctx context.Context, sessionID uuid.UUID, orderedIndices []int, destName string) (int64, error) {

	for _, index := range orderedIndices {
		_, err := a.client.StatObject(ctx, a.config.BucketName, chunkKey(sessionID, index), minio.StatObjectOptions{})
		if err != nil {
			if minio.ToErrorResponse(err).Code == "NoSuchKey" {
				return 0, fmt.Errorf("%w: chunk %d", domain.ErrChunkMissing, index)
			}
			return 0, fmt.Errorf("failed to stat chunk %d: %w", index, err)
		}
	}

	pr, pw := io.Pipe()
	go func() {
		for _, index := range orderedIndices {
			obj, err := a.client.GetObject(ctx, a.config.BucketName, chunkKey(sessionID, index), minio.GetObjectOptions{})
			if err != nil {
				pw.CloseWithError(fmt.Errorf("failed to read chunk %d: %w", index, err))
				return
			}
			_, err = io.Copy(pw, obj)
			obj.Close()
			if err != nil {
				pw.CloseWithError(fmt.Errorf("failed to stream chunk %d: %w", index, err))
				return
			}
		}
		pw.Close()
	}()

	info, err := a.client.PutObject(ctx, a.config.BucketName, artifactKey(destName), pr, -1, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		if rmErr := a.client.RemoveObject(ctx, a.config.BucketName, artifactKey(destName), minio.RemoveObjectOptions{}); rmErr != nil {
			a.logger.Error("failed to discard partial artifact object", "key", artifactKey(destName), "error", rmErr)
		}
		return 0, fmt.Errorf("failed to write artifact object: %w", err)
	}

	return info.Size, nil
}

// DeleteChunks removes every chunk object of the session
func (a *Adapter) DeleteChunks(ctx context.Context, sessionID uuid.UUID) error {
	objects := a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:    sessionPrefix(sessionID),
		Recursive: true,
	})

	for object := range objects {
		if object.Err != nil {
			return fmt.Errorf("failed to list chunk objects: %w", object.Err)
		}
		if err := a.client.RemoveObject(ctx, a.config.BucketName, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove chunk object %s: %w", object.Key, err)
		}
	}
	return nil
}

// OpenArtifact opens an artifact object for reading and reports its size
func (a *Adapter) OpenArtifact(ctx context.Context, storedFilename string) (io.ReadCloser, int64, error) {
	info, err := a.client.StatObject(ctx, a.config.BucketName, artifactKey(storedFilename), minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, 0, domain.ErrArtifactNotFound
		}
		return nil, 0, fmt.Errorf("failed to stat artifact object: %w", err)
	}

	obj, err := a.client.GetObject(ctx, a.config.BucketName, artifactKey(storedFilename), minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get artifact object: %w", err)
	}

	return obj, info.Size, nil
}

// DeleteArtifact removes an artifact object; minio treats a missing key as success
func (a *Adapter) DeleteArtifact(ctx context.Context, storedFilename string) error {
	return a.client.RemoveObject(ctx, a.config.BucketName, artifactKey(storedFilename), minio.RemoveObjectOptions{})
}
