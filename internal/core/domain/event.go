package domain

import "time"

// EventType represents a published event kind
type EventType string

const (
	EventTypeReleasePublished EventType = "release.published"
)

// ReleasePublishedEvent is emitted after a finalize durably publishes a new
// artifact. Consumers (release dashboards, notifiers) pick it up from the
// broker; delivery is best-effort and never blocks the publish itself.
type ReleasePublishedEvent struct {
	Type           EventType `json:"type"`
	CurrentVersion string    `json:"currentVersion"`
	MinVersion     string    `json:"minVersion"`
	StoredFilename string    `json:"storedFilename"`
	OriginalName   string    `json:"originalName"`
	SizeBytes      int64     `json:"sizeBytes"`
	UploadedAt     time.Time `json:"uploadedAt"`
}
