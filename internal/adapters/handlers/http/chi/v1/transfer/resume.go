package transfer

import (
	"encoding/json"
	"errors"
	"net/http"

	"chunkstream/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *HandlerV1) ResumeV1(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.transferService.Resume(r.Context(), jobID)
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		http.Error(w, "task not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrResumeNotAllowed):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, domain.ErrTaskAlreadyRunning):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error resuming task", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(taskView(task)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
