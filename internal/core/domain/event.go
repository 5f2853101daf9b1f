package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadCompletedEvent is published after a server-side upload finalizes
type UploadCompletedEvent struct {
	JobID       uuid.UUID `json:"job_id"`
	ObjectID    uuid.UUID `json:"object_id"`
	ObjectKey   string    `json:"object_key"`
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	ETag        string    `json:"etag"`
	CompletedAt time.Time `json:"completed_at"`
}
