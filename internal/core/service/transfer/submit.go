package transfer

import (
	"context"
	"time"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// Submit validates the request, persists a new task and schedules the
// transfer on the worker pool. It returns the job id immediately: the
// caller is never blocked on the transfer itself.
func (s *Service) Submit(ctx context.Context, payload []byte, fileName string, contentType string, chunkSize int64) (uuid.UUID, error) {

	plan, err := s.uploads.PlanUpload(fileName, contentType, int64(len(payload)), chunkSize)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now()
	task := domain.UploadTask{
		JobID:           uuid.New(),
		Status:          domain.TaskStatusSubmitted,
		ProgressPercent: 0,
		Message:         "upload submitted",
		UploadedParts:   0,
		TotalParts:      plan.PartCount,
		FileName:        fileName,
		FileSizeBytes:   int64(len(payload)),
		ContentType:     contentType,
		ChunkSizeBytes:  plan.ChunkSize,
		StartedAt:       now,
		CreatedAt:       now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return uuid.Nil, err
	}
	s.progress.put(task)

	if err := s.claim(task.JobID); err != nil {
		return uuid.Nil, err
	}
	if err := s.enqueue(ctx, job{jobID: task.JobID, payload: payload}); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("upload task submitted",
		"jobID", task.JobID, "fileName", fileName, "sizeBytes", task.FileSizeBytes, "totalParts", task.TotalParts)

	return task.JobID, nil
}
