package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"chunkstream/internal/core/domain"
)

// V1InitializeSessionRequest is the request to open an upload session
type V1InitializeSessionRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	ChunkSize   int64  `json:"chunk_size,omitempty"`
}

// V1InitializeSessionResponse is the response to open an upload session
type V1InitializeSessionResponse struct {
	SessionID string `json:"session_id"`
	ObjectKey string `json:"object_key"`
	ChunkSize int64  `json:"chunk_size"`
	MinPart   int    `json:"min_part"`
	MaxPart   int    `json:"max_part"`
}

func (h *HandlerV1) InitializeSessionV1(w http.ResponseWriter, r *http.Request) {
	var req V1InitializeSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding initialize session request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.uploadService.InitializeSession(r.Context(), req.FileName, req.ContentType, req.SizeBytes, req.ChunkSize)
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrFileSizeTooBig),
		errors.Is(err, domain.ErrUnsupportedContentType),
		errors.Is(err, domain.ErrChunkSizeOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error initializing session", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1InitializeSessionResponse{
			SessionID: session.SessionID,
			ObjectKey: session.ObjectKey,
			ChunkSize: session.PartSize,
			MinPart:   session.MinPartNumber,
			MaxPart:   session.MaxPartNumber,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
