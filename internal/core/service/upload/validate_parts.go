package upload

import (
	"fmt"
	"sort"

	"chunkstream/internal/core/domain"
)

// ValidatePartList checks that a client-submitted completion part list is
// non-empty, carries an integrity tag per part and forms a contiguous
// 1..N range with no duplicates. Input order does not matter. Pure, no
// side effects; invoked before any remote call is attempted.
func ValidatePartList(parts []domain.UploadPart) error {
	if len(parts) == 0 {
		return domain.ErrNoParts
	}

	seen := make(map[int]struct{}, len(parts))
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		if part.PartNumber <= 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidPartNumber, part.PartNumber)
		}
		if part.ETag == "" {
			return fmt.Errorf("%w: part %d", domain.ErrMissingIntegrityTag, part.PartNumber)
		}
		if _, dup := seen[part.PartNumber]; dup {
			return fmt.Errorf("%w: %d", domain.ErrDuplicatePart, part.PartNumber)
		}
		seen[part.PartNumber] = struct{}{}
		numbers = append(numbers, part.PartNumber)
	}

	sort.Ints(numbers)
	for i, n := range numbers {
		if n != i+1 {
			return fmt.Errorf("%w: expected part %d, got %d", domain.ErrPartOutOfSequence, i+1, n)
		}
	}

	return nil
}
