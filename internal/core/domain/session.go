package domain

import "time"

// UploadSession references a store-side multipart upload for one object key
type UploadSession struct {
	SessionID     string
	ObjectKey     string
	PartSize      int64
	MinPartNumber int
	MaxPartNumber int
}

// ChunkPlan describes how a file of known size splits into parts
type ChunkPlan struct {
	ChunkSize int64
	PartCount int
}

// PartLength returns the byte length of a given part. Every part is
// ChunkSize long except the last one, which holds the remainder.
func (p ChunkPlan) PartLength(partNumber int, fileSize int64) int64 {
	offset := p.PartOffset(partNumber)
	if remaining := fileSize - offset; remaining < p.ChunkSize {
		return remaining
	}
	return p.ChunkSize
}

// PartOffset returns the byte offset of a given part within the file
func (p ChunkPlan) PartOffset(partNumber int) int64 {
	return int64(partNumber-1) * p.ChunkSize
}

// UploadPart represents one part of a multipart upload. Depending on the
// code path it carries either a presigned URL (issuance) or an integrity
// tag (committed part).
type UploadPart struct {
	PartNumber   int
	ETag         string
	SizeBytes    int64
	PresignedURL string
	ExpiresAt    *time.Time
}

// ObjectStat is the store's view of a finalized object
type ObjectStat struct {
	SizeBytes int64
	ETag      string
}
