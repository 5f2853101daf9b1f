package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"chunkstream/internal/core/domain"
)

// V1PartRecord is one committed part
type V1PartRecord struct {
	PartNumber int    `json:"part_number"`
	ETag       string `json:"etag"`
	SizeBytes  int64  `json:"size_bytes"`
}

// V1ListPartsResponse lists the parts the store has committed
type V1ListPartsResponse struct {
	Parts []V1PartRecord `json:"parts"`
}

func (h *HandlerV1) ListPartsV1(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	objectKey := r.URL.Query().Get("object_key")
	if sessionID == "" || objectKey == "" {
		http.Error(w, "session_id and object_key are required", http.StatusBadRequest)
		return
	}

	parts, err := h.uploadService.ListUploadedParts(r.Context(), sessionID, objectKey)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error listing uploaded parts", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1ListPartsResponse{Parts: make([]V1PartRecord, 0, len(parts))}
		for _, part := range parts {
			resp.Parts = append(resp.Parts, V1PartRecord{
				PartNumber: part.PartNumber,
				ETag:       part.ETag,
				SizeBytes:  part.SizeBytes,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
