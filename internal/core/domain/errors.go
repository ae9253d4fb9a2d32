package domain

import (
	"errors"
	"fmt"
)

// ErrMissingField is an error thrown when a required request field is absent
var ErrMissingField = errors.New("missing field")

// ErrInvalidVersion is an error thrown when a version string is malformed
var ErrInvalidVersion = errors.New("invalid version format")

// ErrInvalidExtension is an error thrown when the artifact extension is not allowed
var ErrInvalidExtension = errors.New("file extension not allowed")

// ErrFileSizeTooBig is an error thrown when the declared file size exceeds the limit
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrInvalidChunkIndex is an error thrown when a chunk index is outside the session range
var ErrInvalidChunkIndex = errors.New("chunk index out of range")

// ErrEmptyChunk is an error thrown when a chunk upload carries no bytes
var ErrEmptyChunk = errors.New("empty chunk")

// ErrSessionNotFound is an error thrown when session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrChunkMissing is an error thrown when a chunk's bytes are absent from storage
var ErrChunkMissing = errors.New("chunk data missing")

// ErrCorruptSession is an error thrown when bookkeeping and storage disagree;
// the session is kept so the client can re-upload the affected chunks
var ErrCorruptSession = errors.New("corrupt session")

// ErrNoArtifactPublished is an error thrown when the catalog is empty
var ErrNoArtifactPublished = errors.New("no artifact published")

// ErrArtifactNotFound is an error thrown when a filename does not match the current artifact
var ErrArtifactNotFound = errors.New("artifact not found")

// IncompleteUploadError is returned by finalize when not every chunk has
// arrived yet. The client should keep uploading and retry.
type IncompleteUploadError struct {
	Received int
	Total    int
}

func (e *IncompleteUploadError) Error() string {
	return fmt.Sprintf("incomplete upload: %d of %d chunks received", e.Received, e.Total)
}
