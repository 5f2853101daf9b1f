package transfer

import (
	"context"
	"fmt"

	"chunkstream/internal/core/domain"
)

// RecoverInterrupted demotes every task left in UPLOADING to PAUSED. After
// an unclean shutdown no worker is running for those tasks, so the status
// is a lie until an operator or client asks for a resume. Runs at boot,
// strictly before the worker pool starts; staged files and store-side
// sessions are left untouched. A failure on one task never blocks the
// reconciliation of the others.
func (s *Service) RecoverInterrupted(ctx context.Context) error {

	interrupted, err := s.tasks.FindByStatus(ctx, domain.TaskStatusUploading)
	if err != nil {
		return fmt.Errorf("could not load interrupted tasks: %w", err)
	}

	var failed int
	for _, task := range interrupted {
		task.Status = domain.TaskStatusPaused
		task.Message = "upload interrupted by process restart; resume required"
		if err := s.tasks.Save(ctx, task); err != nil {
			s.logger.Error("could not pause interrupted task", "jobID", task.JobID, "error", err)
			failed++
			continue
		}
		s.logger.Info("interrupted task paused", "jobID", task.JobID, "uploadedParts", task.UploadedParts, "totalParts", task.TotalParts)
	}

	if len(interrupted) > 0 {
		s.logger.Info("boot recovery finished", "paused", len(interrupted)-failed, "failed", failed)
	}
	return nil
}
