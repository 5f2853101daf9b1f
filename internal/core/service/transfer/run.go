package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"chunkstream/internal/core/domain"
)

func (s *Service) run(ctx context.Context, j job) {
	defer s.release(j.jobID)

	task, err := s.tasks.FindByJobID(ctx, j.jobID)
	if err != nil {
		s.logger.Error("could not load task for worker", "jobID", j.jobID, "error", err)
		return
	}

	if j.resume {
		err = s.runResume(ctx, task)
	} else {
		err = s.runUpload(ctx, task, j.payload)
	}
	if err != nil {
		s.fail(ctx, task, err)
	}
}

// runUpload is the end-to-end transfer body executed on a worker: stage,
// open session, upload parts sequentially, finalize.
func (s *Service) runUpload(ctx context.Context, task *domain.UploadTask, payload []byte) error {

	task.Status = domain.TaskStatusUploading
	task.Message = "staging file"
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	// The staged file, not the request buffer, is what survives a crash.
	// Its path is persisted before anything else so every later failure
	// leaves a resumable task behind.
	stagedPath, err := s.stage(task, payload)
	if err != nil {
		return err
	}
	task.StagedFilePath = stagedPath
	task.ProgressPercent = progressStaged
	task.Message = "file staged"
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	session, err := s.uploads.InitializeSession(ctx, task.FileName, task.ContentType, task.FileSizeBytes, task.ChunkSizeBytes)
	if err != nil {
		return err
	}
	task.SessionID = session.SessionID
	task.ObjectKey = session.ObjectKey
	task.ProgressPercent = progressSessionOpened
	task.Message = "session opened"
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	parts, err := s.uploadParts(ctx, task, nil)
	if err != nil {
		return err
	}

	return s.finalize(ctx, task, parts)
}

func (s *Service) stage(task *domain.UploadTask, payload []byte) (string, error) {
	if err := os.MkdirAll(s.cfg.StagingDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create staging dir: %w", err)
	}
	path := filepath.Join(s.cfg.StagingDir, task.JobID.String()+".bin")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("could not stage file: %w", err)
	}
	return path, nil
}

// uploadParts walks part numbers 1..N strictly sequentially, reading each
// part's byte range from the staged file. Parts present in committed are
// skipped: the store already holds those bytes.
func (s *Service) uploadParts(ctx context.Context, task *domain.UploadTask, committed map[int]string) ([]domain.UploadPart, error) {

	file, err := os.Open(task.StagedFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not open staged file: %w", err)
	}
	defer file.Close()

	plan := task.Plan()
	buf := make([]byte, plan.ChunkSize)
	parts := make([]domain.UploadPart, 0, task.TotalParts)

	for partNumber := 1; partNumber <= task.TotalParts; partNumber++ {
		if etag, done := committed[partNumber]; done {
			parts = append(parts, domain.UploadPart{PartNumber: partNumber, ETag: etag})
			continue
		}

		length := plan.PartLength(partNumber, task.FileSizeBytes)
		if _, err := file.ReadAt(buf[:length], plan.PartOffset(partNumber)); err != nil {
			return nil, fmt.Errorf("could not read part %d from staged file: %w", partNumber, err)
		}

		etag, err := s.storage.UploadPart(ctx, task.SessionID, task.ObjectKey, partNumber, buf[:length])
		if err != nil {
			return nil, fmt.Errorf("%w: could not upload part %d: %w", domain.ErrStore, partNumber, err)
		}
		parts = append(parts, domain.UploadPart{PartNumber: partNumber, ETag: etag, SizeBytes: length})

		task.UploadedParts++
		task.ProgressPercent = partProgress(task.UploadedParts, task.TotalParts)
		task.Message = fmt.Sprintf("uploaded part %d/%d", partNumber, task.TotalParts)
		if err := s.saveTask(ctx, task); err != nil {
			return nil, err
		}
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNumber < parts[j].PartNumber })
	return parts, nil
}

func (s *Service) finalize(ctx context.Context, task *domain.UploadTask, parts []domain.UploadPart) error {

	task.Message = "finalizing upload"
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	object, err := s.uploads.CompleteUpload(ctx, task.SessionID, task.ObjectKey, parts)
	if err != nil {
		return err
	}

	task.ProgressPercent = progressFinalized
	task.Message = "upload finalized"
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	if err := os.Remove(task.StagedFilePath); err != nil {
		s.logger.Warn("could not remove staged file", "jobID", task.JobID, "path", task.StagedFilePath, "error", err)
	}

	now := time.Now()
	task.Status = domain.TaskStatusCompleted
	task.ProgressPercent = progressComplete
	task.Message = "upload completed"
	task.FinalizedObjectID = &object.ID
	task.EndedAt = &now
	if err := s.saveTask(ctx, task); err != nil {
		return err
	}

	s.publish(ctx, task, object)

	s.logger.Info("upload task completed",
		"jobID", task.JobID, "objectKey", task.ObjectKey, "sizeBytes", object.SizeBytes)
	return nil
}

func (s *Service) publish(ctx context.Context, task *domain.UploadTask, object *domain.FinalizedObject) {
	event := domain.UploadCompletedEvent{
		JobID:       task.JobID,
		ObjectID:    object.ID,
		ObjectKey:   object.ObjectKey,
		FileName:    task.FileName,
		SizeBytes:   object.SizeBytes,
		ETag:        object.ETag,
		CompletedAt: time.Now(),
	}
	if err := s.publisher.PublishUploadCompleted(ctx, event); err != nil {
		s.logger.Error("could not publish upload completed event", "jobID", task.JobID, "error", err)
	}
}

// fail is the terminal path for one attempt. Neither the staged file nor
// the store-side session is touched: a later resume needs both. Finalize
// failures have already released the session inside CompleteUpload.
func (s *Service) fail(ctx context.Context, task *domain.UploadTask, cause error) {
	s.logger.Error("upload task failed", "jobID", task.JobID, "error", cause)

	now := time.Now()
	task.Status = domain.TaskStatusFailed
	task.ProgressPercent = domain.ProgressFailed
	task.Message = cause.Error()
	task.EndedAt = &now
	if err := s.saveTask(ctx, task); err != nil {
		s.logger.Error("could not persist failed task", "jobID", task.JobID, "error", err)
	}
}
