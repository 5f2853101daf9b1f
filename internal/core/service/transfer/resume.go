package transfer

import (
	"context"
	"fmt"
	"os"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// Resume re-enters the upload state machine for a paused or failed task.
// Preconditions are checked synchronously; the transfer itself runs on
// the worker pool.
func (s *Service) Resume(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error) {

	task, err := s.tasks.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !task.Resumable() {
		return nil, fmt.Errorf("%w: task %s is %s", domain.ErrResumeNotAllowed, jobID, task.Status)
	}
	if task.SessionID == "" || task.ObjectKey == "" {
		return nil, fmt.Errorf("%w: task %s has no recorded session", domain.ErrResumeNotAllowed, jobID)
	}
	if task.StagedFilePath == "" {
		return nil, fmt.Errorf("%w: task %s has no staged file", domain.ErrResumeNotAllowed, jobID)
	}
	if _, err := os.Stat(task.StagedFilePath); err != nil {
		return nil, fmt.Errorf("%w: staged file missing for task %s: %v", domain.ErrResumeNotAllowed, jobID, err)
	}

	if err := s.claim(jobID); err != nil {
		return nil, err
	}

	previousStatus := task.Status
	task.Status = domain.TaskStatusUploading
	task.Message = "resume scheduled"
	if err := s.saveTask(ctx, task); err != nil {
		s.release(jobID)
		return nil, err
	}

	if err := s.enqueue(ctx, job{jobID: jobID, resume: true}); err != nil {
		// No worker owns the task once enqueue fails; restore the previous
		// status so it stays resumable instead of stuck in UPLOADING.
		task.Status = previousStatus
		task.Message = "resume could not be scheduled"
		if saveErr := s.saveTask(context.WithoutCancel(ctx), task); saveErr != nil {
			s.logger.Error("could not restore task status after failed scheduling", "jobID", jobID, "error", saveErr)
		}
		return nil, err
	}

	s.logger.Info("upload task resume scheduled", "jobID", jobID, "uploadedParts", task.UploadedParts, "totalParts", task.TotalParts)
	return task, nil
}

// runResume reconciles against the store before uploading anything: the
// store, not local state, is authoritative about which parts landed.
// Already-committed part numbers are skipped so resumed uploads never
// re-transfer durable bytes.
func (s *Service) runResume(ctx context.Context, task *domain.UploadTask) error {

	task.Message = "reconciling committed parts"
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	committedParts, err := s.storage.ListCommittedParts(ctx, task.SessionID, task.ObjectKey)
	if err != nil {
		return fmt.Errorf("%w: could not list committed parts: %w", domain.ErrStore, err)
	}

	committed := make(map[int]string, len(committedParts))
	for _, part := range committedParts {
		committed[part.PartNumber] = part.ETag
	}

	task.UploadedParts = len(committed)
	task.ProgressPercent = partProgress(task.UploadedParts, task.TotalParts)
	task.Message = fmt.Sprintf("resuming after part %d/%d", task.UploadedParts, task.TotalParts)
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	parts, err := s.uploadParts(ctx, task, committed)
	if err != nil {
		return err
	}

	return s.finalize(ctx, task, parts)
}
