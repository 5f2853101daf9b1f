package transfer_test

import (
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chunkstream/internal/adapters/handlers/http/chi"
	transfer3 "chunkstream/internal/adapters/handlers/http/chi/v1/transfer"
	"chunkstream/internal/core/domain"
	"chunkstream/internal/core/service/transfer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProgressV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - running task", func(t *testing.T) {
		// Arrange
		jobID := uuid.New()

		mockService := transfer.NewMockTransferService()
		mockService.On("Progress", mock.Anything, jobID).
			Return(&domain.UploadTask{
				JobID:           jobID,
				Status:          domain.TaskStatusUploading,
				ProgressPercent: 55,
				Message:         "uploaded part 7/13",
				UploadedParts:   7,
				TotalParts:      13,
				FileName:        "clip.mp4",
				FileSizeBytes:   100 << 20,
				StartedAt:       time.Now().UTC(),
			}, nil)

		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/transfer/"+jobID.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response transfer3.V1TaskView
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, jobID, response.JobID)
		assert.Equal(t, "uploading", response.Status)
		assert.Equal(t, 55, response.ProgressPercent)
		assert.Equal(t, 7, response.UploadedParts)
		assert.Equal(t, 13, response.TotalParts)

		mockService.AssertExpectations(t)
	})

	t.Run("success - failed task reports sentinel progress", func(t *testing.T) {
		// Arrange
		jobID := uuid.New()

		mockService := transfer.NewMockTransferService()
		mockService.On("Progress", mock.Anything, jobID).
			Return(&domain.UploadTask{
				JobID:           jobID,
				Status:          domain.TaskStatusFailed,
				ProgressPercent: domain.ProgressFailed,
				Message:         "could not upload part 3: connection reset",
			}, nil)

		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/transfer/"+jobID.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response transfer3.V1TaskView
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, "failed", response.Status)
		assert.Equal(t, -1, response.ProgressPercent)
	})

	t.Run("error - task not found", func(t *testing.T) {
		// Arrange
		jobID := uuid.New()

		mockService := transfer.NewMockTransferService()
		mockService.On("Progress", mock.Anything, jobID).
			Return((*domain.UploadTask)(nil), domain.ErrTaskNotFound)

		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/transfer/"+jobID.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - invalid job id format", func(t *testing.T) {
		// Arrange
		mockService := transfer.NewMockTransferService()
		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/transfer/not-a-uuid", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Progress", mock.Anything, mock.Anything)
	})
}

func TestResumeV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - resume scheduled", func(t *testing.T) {
		// Arrange
		jobID := uuid.New()

		mockService := transfer.NewMockTransferService()
		mockService.On("Resume", mock.Anything, jobID).
			Return(&domain.UploadTask{
				JobID:           jobID,
				Status:          domain.TaskStatusUploading,
				ProgressPercent: 55,
				Message:         "resume scheduled",
				UploadedParts:   7,
				TotalParts:      13,
			}, nil)

		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/transfer/"+jobID.String()+"/resume", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusAccepted, w.Code)

		var response transfer3.V1TaskView
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, "uploading", response.Status)
		assert.Equal(t, "resume scheduled", response.Message)

		mockService.AssertExpectations(t)
	})

	t.Run("error - resume not allowed", func(t *testing.T) {
		// Arrange
		jobID := uuid.New()

		mockService := transfer.NewMockTransferService()
		mockService.On("Resume", mock.Anything, jobID).
			Return((*domain.UploadTask)(nil), domain.ErrResumeNotAllowed)

		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/transfer/"+jobID.String()+"/resume", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - already running", func(t *testing.T) {
		// Arrange
		jobID := uuid.New()

		mockService := transfer.NewMockTransferService()
		mockService.On("Resume", mock.Anything, jobID).
			Return((*domain.UploadTask)(nil), domain.ErrTaskAlreadyRunning)

		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/transfer/"+jobID.String()+"/resume", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - task not found", func(t *testing.T) {
		// Arrange
		jobID := uuid.New()

		mockService := transfer.NewMockTransferService()
		mockService.On("Resume", mock.Anything, jobID).
			Return((*domain.UploadTask)(nil), domain.ErrTaskNotFound)

		handler := transfer3.NewTransferHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, nil, handler, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/transfer/"+jobID.String()+"/resume", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}
