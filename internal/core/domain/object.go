package domain

import (
	"time"

	"github.com/google/uuid"
)

// ObjectStatus represents the status of a finalized object
type ObjectStatus string

const (
	ObjectStatusCompleted ObjectStatus = "completed"
)

// FinalizedObject is the persisted record of a successfully completed
// upload. ObjectKey is unique: a second finalize attempt for the same key
// must fail, never silently succeed twice.
type FinalizedObject struct {
	ID        uuid.UUID
	FileName  string
	SizeBytes int64
	ObjectKey string
	Status    ObjectStatus
	ETag      string
	CreatedAt time.Time

	// DownloadURL is computed per request and never persisted
	DownloadURL       string
	DownloadExpiresAt *time.Time
}
