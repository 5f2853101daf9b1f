package port

import (
	"context"

	"chunkstream/internal/core/domain"
)

// EventPublisher is an interface to publish upload lifecycle events
// (nats, kafka, ...)
type EventPublisher interface {
	PublishUploadCompleted(ctx context.Context, event domain.UploadCompletedEvent) error
	Close() error
}
