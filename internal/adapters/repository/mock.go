package repository

import (
	"context"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTaskRepository struct {
	mock.Mock
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

func (m *MockTaskRepository) Create(ctx context.Context, task domain.UploadTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(*domain.UploadTask), args.Error(1)
}

func (m *MockTaskRepository) FindByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.UploadTask, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.UploadTask), args.Error(1)
}

func (m *MockTaskRepository) Save(ctx context.Context, task domain.UploadTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

type MockObjectRepository struct {
	mock.Mock
}

func NewMockObjectRepository() *MockObjectRepository {
	return &MockObjectRepository{}
}

func (m *MockObjectRepository) Create(ctx context.Context, object domain.FinalizedObject) error {
	args := m.Called(ctx, object)
	return args.Error(0)
}

func (m *MockObjectRepository) FindByKey(ctx context.Context, objectKey string) (*domain.FinalizedObject, error) {
	args := m.Called(ctx, objectKey)
	return args.Get(0).(*domain.FinalizedObject), args.Error(1)
}

func (m *MockObjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FinalizedObject, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.FinalizedObject), args.Error(1)
}
