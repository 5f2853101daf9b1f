package transfer

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// V1SubmitResponse carries the job id of a scheduled transfer
type V1SubmitResponse struct {
	JobID uuid.UUID `json:"job_id"`
}

// SubmitV1 accepts a whole file as a multipart form upload and schedules
// the server-side transfer. The response returns as soon as the task is
// persisted; progress is polled separately.
func (h *HandlerV1) SubmitV1(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file form field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("error reading submitted file", "error", err)
		http.Error(w, "could not read file", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")

	var chunkSize int64
	if raw := r.FormValue("chunk_size"); raw != "" {
		chunkSize, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "chunk_size must be an integer", http.StatusBadRequest)
			return
		}
	}

	jobID, err := h.transferService.Submit(r.Context(), payload, header.Filename, contentType, chunkSize)
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrFileSizeTooBig),
		errors.Is(err, domain.ErrUnsupportedContentType),
		errors.Is(err, domain.ErrChunkSizeOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error submitting transfer", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1SubmitResponse{JobID: jobID}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
