package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadSession represents one in-progress chunked upload. It is created at
// init, grows as chunks arrive and is deleted when the finalize that
// publishes its artifact commits.
type UploadSession struct {
	ID             uuid.UUID
	FileName       string
	DeclaredSize   int64
	TotalChunks    int
	CurrentVersion string
	MinVersion     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
