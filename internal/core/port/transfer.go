package port

import (
	"context"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// TransferService is an interface for the server-side upload path: the
// caller hands over the whole payload and the service chunks, uploads and
// finalizes it asynchronously, surviving process restarts
type TransferService interface {
	Submit(ctx context.Context, payload []byte, fileName string, contentType string, chunkSize int64) (uuid.UUID, error)
	Progress(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error)
	Resume(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error)
	RecoverInterrupted(ctx context.Context) error
}
