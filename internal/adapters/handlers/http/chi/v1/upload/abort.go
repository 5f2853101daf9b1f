package upload

import (
	"encoding/json"
	"net/http"
)

// V1AbortUploadRequest is the request to abort an upload session
type V1AbortUploadRequest struct {
	SessionID string `json:"session_id"`
	ObjectKey string `json:"object_key"`
}

func (h *HandlerV1) AbortUploadV1(w http.ResponseWriter, r *http.Request) {
	var req V1AbortUploadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding abort upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.SessionID == "" || req.ObjectKey == "" {
		http.Error(w, "session_id and object_key are required", http.StatusBadRequest)
		return
	}

	if err := h.uploadService.AbortUpload(r.Context(), req.SessionID, req.ObjectKey); err != nil {
		h.logger.Error("error aborting upload", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
