package port

import (
	"context"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// TaskRepository is an interface to persist upload task state
type TaskRepository interface {
	Create(ctx context.Context, task domain.UploadTask) error
	FindByJobID(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error)
	FindByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.UploadTask, error)
	Save(ctx context.Context, task domain.UploadTask) error
}
