package domain

import "errors"

// ErrValidation is an error thrown when caller-supplied upload metadata is invalid
var ErrValidation = errors.New("invalid upload request")

// ErrFileSizeTooBig is an error thrown when file size exceeds the configured maximum
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrUnsupportedContentType is an error thrown when content type is not allow-listed
var ErrUnsupportedContentType = errors.New("unsupported content type")

// ErrChunkSizeOutOfRange is an error thrown when chunk size violates the store part-size bounds
var ErrChunkSizeOutOfRange = errors.New("chunk size out of range")

// ErrNoParts is an error thrown when a completion part list is empty
var ErrNoParts = errors.New("part list is empty")

// ErrInvalidPartNumber is an error thrown when a part number is not positive
var ErrInvalidPartNumber = errors.New("invalid part number")

// ErrMissingIntegrityTag is an error thrown when a part carries no integrity tag
var ErrMissingIntegrityTag = errors.New("missing integrity tag")

// ErrDuplicatePart is an error thrown when parts are duplicated
var ErrDuplicatePart = errors.New("duplicate part")

// ErrPartOutOfSequence is an error thrown when part numbers do not form a contiguous 1..N range
var ErrPartOutOfSequence = errors.New("part numbers out of sequence")

// ErrAlreadyCompleted is an error thrown when an object key was already finalized
var ErrAlreadyCompleted = errors.New("object already completed")

// ErrStore is an error thrown when the object store rejects or fails an operation
var ErrStore = errors.New("object store failure")

// ErrSessionNotFound is an error thrown when an upload session is unknown at the store
var ErrSessionNotFound = errors.New("session not found")

// ErrTaskNotFound is an error thrown when an upload task is unknown
var ErrTaskNotFound = errors.New("upload task not found")

// ErrObjectNotFound is an error thrown when a finalized object is unknown
var ErrObjectNotFound = errors.New("finalized object not found")

// ErrResumeNotAllowed is an error thrown when a task does not satisfy the resume preconditions
var ErrResumeNotAllowed = errors.New("resume not allowed")

// ErrTaskAlreadyRunning is an error thrown when a worker is already active for a task
var ErrTaskAlreadyRunning = errors.New("task already claimed by a worker")
