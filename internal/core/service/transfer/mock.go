package transfer

import (
	"context"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransferService is a mock implementation of TransferService
type MockTransferService struct {
	mock.Mock
}

// NewMockTransferService creates a new MockTransferService
func NewMockTransferService() *MockTransferService {
	return &MockTransferService{}
}

func (m *MockTransferService) Submit(ctx context.Context, payload []byte, fileName string, contentType string, chunkSize int64) (uuid.UUID, error) {
	args := m.Called(ctx, payload, fileName, contentType, chunkSize)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTransferService) Progress(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(*domain.UploadTask), args.Error(1)
}

func (m *MockTransferService) Resume(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(*domain.UploadTask), args.Error(1)
}

func (m *MockTransferService) RecoverInterrupted(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
