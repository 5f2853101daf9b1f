package transfer

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"chunkstream/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1TaskView is the caller-facing view of an upload task
type V1TaskView struct {
	JobID           uuid.UUID  `json:"job_id"`
	Status          string     `json:"status"`
	ProgressPercent int        `json:"progress_percent"`
	Message         string     `json:"message"`
	UploadedParts   int        `json:"uploaded_parts"`
	TotalParts      int        `json:"total_parts"`
	FileName        string     `json:"file_name"`
	FileSizeBytes   int64      `json:"file_size_bytes"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

func taskView(task *domain.UploadTask) V1TaskView {
	return V1TaskView{
		JobID:           task.JobID,
		Status:          string(task.Status),
		ProgressPercent: task.ProgressPercent,
		Message:         task.Message,
		UploadedParts:   task.UploadedParts,
		TotalParts:      task.TotalParts,
		FileName:        task.FileName,
		FileSizeBytes:   task.FileSizeBytes,
		StartedAt:       task.StartedAt,
		EndedAt:         task.EndedAt,
	}
}

func (h *HandlerV1) ProgressV1(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.transferService.Progress(r.Context(), jobID)
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		http.Error(w, "task not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error reading task progress", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(taskView(task)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
