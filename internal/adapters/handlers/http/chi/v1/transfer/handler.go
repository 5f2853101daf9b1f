package transfer

import (
	"log/slog"

	"chunkstream/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 server-side transfer routes
type HandlerV1 struct {
	transferService port.TransferService
	logger          *slog.Logger
}

// NewTransferHandlerV1 creates HandlerV1
func NewTransferHandlerV1(service port.TransferService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		transferService: service,
		logger:          logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.SubmitV1)
	router.Get("/{jobID}", h.ProgressV1)
	router.Post("/{jobID}/resume", h.ResumeV1)

	return router
}
