package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chunkstream/internal/config"
	"chunkstream/internal/core/domain"
	"chunkstream/internal/core/port"

	"github.com/google/uuid"
)

// Progress bands reported while a task moves through its phases. Part
// uploads map linearly into [progressSessionOpened, progressPartsDone] so
// a polling caller sees smooth, monotonic movement.
const (
	progressStaged        = 10
	progressSessionOpened = 15
	progressPartsDone     = 90
	progressFinalized     = 95
	progressComplete      = 100
)

type job struct {
	jobID   uuid.UUID
	payload []byte
	resume  bool
}

// Service owns server-side whole-file uploads: it stages the payload,
// chunks and uploads it on a bounded worker pool, and persists enough
// state to resume after a process restart.
type Service struct {
	storage   port.ObjectStorage
	tasks     port.TaskRepository
	uploads   port.UploadService
	publisher port.EventPublisher
	progress  *progressCache
	cfg       config.TransferConfig
	logger    *slog.Logger

	jobs     chan job
	wg       sync.WaitGroup
	stopOnce sync.Once

	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

// NewTransferService creates a new transfer service. Call Start to spin up
// the worker pool and Shutdown to drain it.
func NewTransferService(storage port.ObjectStorage, tasks port.TaskRepository, uploads port.UploadService, publisher port.EventPublisher, cfg config.TransferConfig, logger *slog.Logger) *Service {
	return &Service{
		storage:   storage,
		tasks:     tasks,
		uploads:   uploads,
		publisher: publisher,
		progress:  newProgressCache(),
		cfg:       cfg,
		logger:    logger,
		jobs:      make(chan job, cfg.QueueCapacity),
		active:    make(map[uuid.UUID]struct{}),
	}
}

// Start launches the worker pool. RecoverInterrupted must have run first:
// recovery and workers must never touch the same task row concurrently.
//
// Job bodies run on a context detached from ctx: the signal context is
// already canceled when Shutdown drains the queue, and queued tasks must
// still reach a terminal or resumable state.
func (s *Service) Start(ctx context.Context) {
	base := context.WithoutCancel(ctx)
	for i := 0; i < s.cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker(base)
	}
	s.logger.Info("transfer workers started", "workers", s.cfg.Workers, "queueCapacity", s.cfg.QueueCapacity)
}

// Shutdown stops accepting jobs and waits until every queued and in-flight
// upload has finished. Safe to call more than once.
func (s *Service) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.jobs)
		s.wg.Wait()
		s.logger.Info("transfer workers drained")
	})
}

// Workers exit only on queue close, never on context cancellation.
func (s *Service) worker(ctx context.Context) {
	defer s.wg.Done()
	for j := range s.jobs {
		s.run(ctx, j)
	}
}

// claim marks a job as owned by one worker. It is taken synchronously by
// Submit and Resume so a second resume for the same jobId is rejected
// while a worker is still active.
func (s *Service) claim(jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.active[jobID]; busy {
		return fmt.Errorf("%w: %s", domain.ErrTaskAlreadyRunning, jobID)
	}
	s.active[jobID] = struct{}{}
	return nil
}

func (s *Service) release(jobID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, jobID)
}

// enqueue hands a job to the pool, honoring backpressure from the bounded
// queue. The claim is released if the caller's context expires first.
func (s *Service) enqueue(ctx context.Context, j job) error {
	select {
	case s.jobs <- j:
		return nil
	case <-ctx.Done():
		s.release(j.jobID)
		return fmt.Errorf("could not schedule job %s: %w", j.jobID, ctx.Err())
	}
}

func (s *Service) saveTask(ctx context.Context, task *domain.UploadTask) error {
	if err := s.tasks.Save(ctx, *task); err != nil {
		return fmt.Errorf("could not persist task %s: %w", task.JobID, err)
	}
	s.progress.put(*task)
	return nil
}

func partProgress(uploadedParts, totalParts int) int {
	span := progressPartsDone - progressSessionOpened
	return progressSessionOpened + span*uploadedParts/totalParts
}
