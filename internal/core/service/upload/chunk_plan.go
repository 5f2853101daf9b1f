package upload

import (
	"fmt"

	"chunkstream/internal/core/domain"
)

// PlanUpload validates upload metadata and computes the chunk plan for a
// file of the given size. A zero chunkSize selects the configured default.
// No I/O is performed.
func (u *uploadService) PlanUpload(fileName string, contentType string, sizeBytes int64, chunkSize int64) (domain.ChunkPlan, error) {
	if err := u.validateMetadata(fileName, contentType, sizeBytes); err != nil {
		return domain.ChunkPlan{}, err
	}

	if chunkSize == 0 {
		chunkSize = u.cfg.DefaultChunkSize
	}
	if chunkSize < u.cfg.MinChunkSize || chunkSize > u.cfg.MaxChunkSize {
		return domain.ChunkPlan{}, fmt.Errorf(
			"%w: %d bytes is outside [%d, %d]",
			domain.ErrChunkSizeOutOfRange, chunkSize, u.cfg.MinChunkSize, u.cfg.MaxChunkSize,
		)
	}

	return domain.ChunkPlan{
		ChunkSize: chunkSize,
		PartCount: partCount(sizeBytes, chunkSize),
	}, nil
}

func partCount(sizeBytes int64, chunkSize int64) int {
	return int((sizeBytes + chunkSize - 1) / chunkSize)
}
