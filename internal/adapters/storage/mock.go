package storage

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of FileStorage
type MockStorage struct {
	mock.Mock
}

// NewMockStorage creates a new MockStorage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) WriteChunk(ctx context.Context, sessionID uuid.UUID, chunkIndex int, r io.Reader) (int64, error) {
	args := m.Called(ctx, sessionID, chunkIndex, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) MergeChunks(ctx context.Context, sessionID uuid.UUID, orderedIndices []int, destName string) (int64, error) {
	args := m.Called(ctx, sessionID, orderedIndices, destName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) DeleteChunks(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockStorage) OpenArtifact(ctx context.Context, storedFilename string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, storedFilename)
	var r io.ReadCloser
	if got := args.Get(0); got != nil {
		r = got.(io.ReadCloser)
	}
	return r, args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) DeleteArtifact(ctx context.Context, storedFilename string) error {
	args := m.Called(ctx, storedFilename)
	return args.Error(0)
}
