package transfer_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chunkstream/internal/config"
	"chunkstream/internal/core/service/transfer"
	"chunkstream/internal/core/service/upload"
)

// Chunk bounds are shrunk so whole multi-part transfers fit in a few
// hundred bytes of payload.
var testUploadCfg = config.UploadConfig{
	MaxFileSize:         1 << 20,
	DefaultChunkSize:    8,
	MinChunkSize:        1,
	MaxChunkSize:        1 << 10,
	MaxPresignBatch:     100,
	AllowedContentTypes: []string{"video/", "text/"},
}

type transferEnv struct {
	service    *transfer.Service
	storage    *fakeStorage
	tasks      *fakeTaskRepo
	objects    *fakeObjectRepo
	publisher  *fakePublisher
	stagingDir string
}

func newTransferEnv(t *testing.T) *transferEnv {
	t.Helper()

	env := newStoppedTransferEnv(t, 2, 8)
	env.service.Start(context.Background())
	t.Cleanup(env.service.Shutdown)
	return env
}

// newStoppedTransferEnv builds the service without starting its worker
// pool. Tests that drive Start and Shutdown themselves use this directly.
func newStoppedTransferEnv(t *testing.T, workers, queueCapacity int) *transferEnv {
	t.Helper()

	env := &transferEnv{
		storage:    newFakeStorage(),
		tasks:      newFakeTaskRepo(),
		objects:    newFakeObjectRepo(),
		publisher:  &fakePublisher{},
		stagingDir: t.TempDir(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uploads := upload.NewUploadService(env.storage, env.objects, testUploadCfg, logger)
	env.service = transfer.NewTransferService(env.storage, env.tasks, uploads, env.publisher, config.TransferConfig{
		StagingDir:    env.stagingDir,
		Workers:       workers,
		QueueCapacity: queueCapacity,
	}, logger)
	return env
}

func testPayload(n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	return payload
}
