package domain

import "time"

// ArtifactRecord represents one published installer version. Records are
// append-only and never mutated; the current artifact is the most recently
// inserted record. Publishing a new version means inserting a new record,
// not updating an old one.
type ArtifactRecord struct {
	ID             int64
	CurrentVersion string
	MinVersion     string
	StoredFilename string
	OriginalName   string
	SizeBytes      int64
	UploadedAt     time.Time
}

// UpdateDecision is the outcome of comparing a client's installed version
// against the current catalog entry. DownloadURL is empty unless HasUpdate.
type UpdateDecision struct {
	NeedsUpdate    bool
	HasUpdate      bool
	CurrentVersion string
	MinVersion     string
	DownloadURL    string
}
