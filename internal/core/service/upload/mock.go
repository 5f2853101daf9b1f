package upload

import (
	"context"

	"chunkstream/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) PlanUpload(fileName string, contentType string, sizeBytes int64, chunkSize int64) (domain.ChunkPlan, error) {
	args := m.Called(fileName, contentType, sizeBytes, chunkSize)
	return args.Get(0).(domain.ChunkPlan), args.Error(1)
}

func (m *MockUploadService) InitializeSession(ctx context.Context, fileName string, contentType string, sizeBytes int64, chunkSize int64) (*domain.UploadSession, error) {
	args := m.Called(ctx, fileName, contentType, sizeBytes, chunkSize)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadService) PartUploadURLs(ctx context.Context, sessionID string, objectKey string, startPart int, endPart int) ([]domain.UploadPart, error) {
	args := m.Called(ctx, sessionID, objectKey, startPart, endPart)
	return args.Get(0).([]domain.UploadPart), args.Error(1)
}

func (m *MockUploadService) ListUploadedParts(ctx context.Context, sessionID string, objectKey string) ([]domain.UploadPart, error) {
	args := m.Called(ctx, sessionID, objectKey)
	return args.Get(0).([]domain.UploadPart), args.Error(1)
}

func (m *MockUploadService) CompleteUpload(ctx context.Context, sessionID string, objectKey string, parts []domain.UploadPart) (*domain.FinalizedObject, error) {
	args := m.Called(ctx, sessionID, objectKey, parts)
	return args.Get(0).(*domain.FinalizedObject), args.Error(1)
}

func (m *MockUploadService) AbortUpload(ctx context.Context, sessionID string, objectKey string) error {
	args := m.Called(ctx, sessionID, objectKey)
	return args.Error(0)
}
