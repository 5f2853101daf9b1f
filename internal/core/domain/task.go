package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the status of a server-side upload task
type TaskStatus string

const (
	TaskStatusSubmitted TaskStatus = "submitted"
	TaskStatusUploading TaskStatus = "uploading"
	TaskStatusPaused    TaskStatus = "paused"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// ProgressFailed is the progress sentinel reported for failed tasks
const ProgressFailed = -1

// UploadTask is the persisted state of a server-side upload. It is the
// single source of truth for resumability after a process restart.
type UploadTask struct {
	JobID             uuid.UUID
	Status            TaskStatus
	ProgressPercent   int
	Message           string
	UploadedParts     int
	TotalParts        int
	FileName          string
	FileSizeBytes     int64
	ContentType       string
	ChunkSizeBytes    int64
	SessionID         string
	ObjectKey         string
	StagedFilePath    string
	FinalizedObjectID *uuid.UUID
	StartedAt         time.Time
	EndedAt           *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Resumable reports whether the task may re-enter the upload loop.
// Submitted tasks have not staged their payload yet and completed tasks
// are terminal, so only paused and failed tasks qualify.
func (t *UploadTask) Resumable() bool {
	return t.Status == TaskStatusPaused || t.Status == TaskStatusFailed
}

// Plan rebuilds the chunk plan recorded on the task
func (t *UploadTask) Plan() ChunkPlan {
	return ChunkPlan{ChunkSize: t.ChunkSizeBytes, PartCount: t.TotalParts}
}
