package port

import (
	"context"

	"chunkstream/internal/core/domain"
)

// UploadService is an interface for the client-driven upload path:
// session initialization, presigned part issuance and completion
type UploadService interface {
	PlanUpload(fileName string, contentType string, sizeBytes int64, chunkSize int64) (domain.ChunkPlan, error)
	InitializeSession(ctx context.Context, fileName string, contentType string, sizeBytes int64, chunkSize int64) (*domain.UploadSession, error)
	PartUploadURLs(ctx context.Context, sessionID string, objectKey string, startPart int, endPart int) ([]domain.UploadPart, error)
	ListUploadedParts(ctx context.Context, sessionID string, objectKey string) ([]domain.UploadPart, error)
	CompleteUpload(ctx context.Context, sessionID string, objectKey string, parts []domain.UploadPart) (*domain.FinalizedObject, error)
	AbortUpload(ctx context.Context, sessionID string, objectKey string) error
}
