package storage

import (
	"context"
	"time"

	"chunkstream/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockObjectStorage struct {
	mock.Mock
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{}
}

func (m *MockObjectStorage) CreateMultipartSession(ctx context.Context, objectKey string, contentType string) (string, error) {
	args := m.Called(ctx, objectKey, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) PresignPartUpload(ctx context.Context, sessionID string, objectKey string, partNumber int) (string, *time.Time, error) {
	args := m.Called(ctx, sessionID, objectKey, partNumber)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}

func (m *MockObjectStorage) UploadPart(ctx context.Context, sessionID string, objectKey string, partNumber int, data []byte) (string, error) {
	args := m.Called(ctx, sessionID, objectKey, partNumber, data)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) ListCommittedParts(ctx context.Context, sessionID string, objectKey string) ([]domain.UploadPart, error) {
	args := m.Called(ctx, sessionID, objectKey)
	return args.Get(0).([]domain.UploadPart), args.Error(1)
}

func (m *MockObjectStorage) CompleteMultipartUpload(ctx context.Context, sessionID string, objectKey string, parts []domain.UploadPart) (string, error) {
	args := m.Called(ctx, sessionID, objectKey, parts)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) AbortMultipartUpload(ctx context.Context, sessionID string, objectKey string) error {
	args := m.Called(ctx, sessionID, objectKey)
	return args.Error(0)
}

func (m *MockObjectStorage) StatObject(ctx context.Context, objectKey string) (*domain.ObjectStat, error) {
	args := m.Called(ctx, objectKey)
	return args.Get(0).(*domain.ObjectStat), args.Error(1)
}

func (m *MockObjectStorage) PresignDownload(ctx context.Context, objectKey string) (string, *time.Time, error) {
	args := m.Called(ctx, objectKey)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}
