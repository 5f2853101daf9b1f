package transfer

import (
	"context"
	"sync"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// progressCache mirrors task rows for low-latency polling. It is never
// authoritative: it starts empty after a restart and is lazily
// repopulated from the task repository on miss.
type progressCache struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]domain.UploadTask
}

func newProgressCache() *progressCache {
	return &progressCache{tasks: make(map[uuid.UUID]domain.UploadTask)}
}

func (c *progressCache) put(task domain.UploadTask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks[task.JobID] = task
}

func (c *progressCache) get(jobID uuid.UUID) (domain.UploadTask, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	task, ok := c.tasks[jobID]
	return task, ok
}

// Progress returns the current view of a task, preferring the in-memory
// cache and falling back to the task repository on a miss
func (s *Service) Progress(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error) {
	if task, ok := s.progress.get(jobID); ok {
		return &task, nil
	}

	task, err := s.tasks.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.progress.put(*task)
	return task, nil
}
