package upload

import (
	"context"
	"io"
	"update-depot/internal/core/domain"

	"github.com/google/uuid"
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

func (m *MockUploadService) InitSession(ctx context.Context, fileName string, fileSize int64, totalChunks int, currentVersion, minVersion string) (uuid.UUID, error) {
	args := m.Called(ctx, fileName, fileSize, totalChunks, currentVersion, minVersion)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUploadService) RecordChunk(ctx context.Context, sessionID uuid.UUID, chunkIndex int, chunk io.Reader) (int, int, error) {
	args := m.Called(ctx, sessionID, chunkIndex, chunk)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockUploadService) Status(ctx context.Context, sessionID uuid.UUID) (int, int, float64, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Int(1), args.Get(2).(float64), args.Error(3)
}

func (m *MockUploadService) Finalize(ctx context.Context, sessionID uuid.UUID) (*domain.ArtifactRecord, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(*domain.ArtifactRecord), args.Error(1)
}
