package upload

import (
	"log/slog"

	"chunkstream/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 client-driven upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/session", h.InitializeSessionV1)
	router.Post("/session/part-urls", h.PartUploadURLsV1)
	router.Get("/session/parts", h.ListPartsV1)
	router.Post("/session/complete", h.CompleteUploadV1)
	router.Delete("/session", h.AbortUploadV1)

	return router
}
