package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"chunkstream/internal/core/domain"
)

// V1PartUploadURLsRequest is the request for presigned part upload URLs
type V1PartUploadURLsRequest struct {
	SessionID string `json:"session_id"`
	ObjectKey string `json:"object_key"`
	StartPart int    `json:"start_part"`
	EndPart   int    `json:"end_part"`
}

// V1PartURL is one presigned part upload URL
type V1PartURL struct {
	PartNumber int        `json:"part_number"`
	URL        string     `json:"url"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

// V1PartUploadURLsResponse is the response with presigned part upload URLs
type V1PartUploadURLsResponse struct {
	Parts []V1PartURL `json:"parts"`
}

func (h *HandlerV1) PartUploadURLsV1(w http.ResponseWriter, r *http.Request) {
	var req V1PartUploadURLsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding part urls request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.SessionID == "" || req.ObjectKey == "" {
		http.Error(w, "session_id and object_key are required", http.StatusBadRequest)
		return
	}

	parts, err := h.uploadService.PartUploadURLs(r.Context(), req.SessionID, req.ObjectKey, req.StartPart, req.EndPart)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error issuing part urls", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1PartUploadURLsResponse{Parts: make([]V1PartURL, 0, len(parts))}
		for _, part := range parts {
			resp.Parts = append(resp.Parts, V1PartURL{
				PartNumber: part.PartNumber,
				URL:        part.PresignedURL,
				ExpiresAt:  part.ExpiresAt,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
