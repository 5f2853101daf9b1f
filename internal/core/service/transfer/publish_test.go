package transfer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"chunkstream/internal/adapters/eventbroker"
	"chunkstream/internal/config"
	"chunkstream/internal/core/domain"
	"chunkstream/internal/core/service/transfer"
	"chunkstream/internal/core/service/upload"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The completed event is a notification, not part of the upload itself. A
// broker outage must not fail a task whose object is already durable.
func TestTransferService_Submit_PublishFailureDoesNotFailTask(t *testing.T) {
	// Arrange
	storage := newFakeStorage()
	tasks := newFakeTaskRepo()
	objects := newFakeObjectRepo()

	publisher := eventbroker.NewMockEventPublisher()
	publisher.On("PublishUploadCompleted", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uploads := upload.NewUploadService(storage, objects, testUploadCfg, logger)
	service := transfer.NewTransferService(storage, tasks, uploads, publisher, config.TransferConfig{
		StagingDir:    t.TempDir(),
		Workers:       1,
		QueueCapacity: 4,
	}, logger)
	service.Start(context.Background())
	t.Cleanup(service.Shutdown)

	// Act
	jobID, err := service.Submit(context.Background(), testPayload(64), "clip.mp4", "video/mp4", 8)
	require.NoError(t, err)

	// Assert
	require.Eventually(t, func() bool {
		task, ok := tasks.get(jobID)
		return ok && task.Status == domain.TaskStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	task, _ := tasks.get(jobID)
	require.Equal(t, 100, task.ProgressPercent)
	publisher.AssertExpectations(t)
}
