package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// V1CompletedPart is one client-uploaded part
type V1CompletedPart struct {
	PartNumber int    `json:"part_number"`
	ETag       string `json:"etag"`
}

// V1CompleteUploadRequest is the request to finalize an upload
type V1CompleteUploadRequest struct {
	SessionID string            `json:"session_id"`
	ObjectKey string            `json:"object_key"`
	Parts     []V1CompletedPart `json:"parts"`
}

// V1CompleteUploadResponse is the finalized object plus its download URL
type V1CompleteUploadResponse struct {
	ObjectID          uuid.UUID  `json:"object_id"`
	FileName          string     `json:"file_name"`
	SizeBytes         int64      `json:"size_bytes"`
	ObjectKey         string     `json:"object_key"`
	ETag              string     `json:"etag"`
	DownloadURL       string     `json:"download_url"`
	DownloadExpiresAt *time.Time `json:"download_expires_at"`
}

func (h *HandlerV1) CompleteUploadV1(w http.ResponseWriter, r *http.Request) {
	var req V1CompleteUploadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding complete upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.SessionID == "" || req.ObjectKey == "" {
		http.Error(w, "session_id and object_key are required", http.StatusBadRequest)
		return
	}

	var parts []domain.UploadPart
	for _, part := range req.Parts {
		parts = append(parts, domain.UploadPart{
			PartNumber: part.PartNumber,
			ETag:       part.ETag,
		})
	}

	object, err := h.uploadService.CompleteUpload(r.Context(), req.SessionID, req.ObjectKey, parts)
	switch {
	case errors.Is(err, domain.ErrNoParts),
		errors.Is(err, domain.ErrInvalidPartNumber),
		errors.Is(err, domain.ErrMissingIntegrityTag),
		errors.Is(err, domain.ErrDuplicatePart),
		errors.Is(err, domain.ErrPartOutOfSequence):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrAlreadyCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error completing upload", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1CompleteUploadResponse{
			ObjectID:          object.ID,
			FileName:          object.FileName,
			SizeBytes:         object.SizeBytes,
			ObjectKey:         object.ObjectKey,
			ETag:              object.ETag,
			DownloadURL:       object.DownloadURL,
			DownloadExpiresAt: object.DownloadExpiresAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
