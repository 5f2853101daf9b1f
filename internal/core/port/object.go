package port

import (
	"context"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// ObjectRepository is an interface to persist finalized object metadata
type ObjectRepository interface {
	Create(ctx context.Context, object domain.FinalizedObject) error
	FindByKey(ctx context.Context, objectKey string) (*domain.FinalizedObject, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FinalizedObject, error)
}
