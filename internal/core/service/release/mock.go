package release

import (
	"context"
	"io"
	"update-depot/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockReleaseService is a mock implementation of ReleaseService
type MockReleaseService struct {
	mock.Mock
}

// NewMockReleaseService creates a new MockReleaseService
func NewMockReleaseService() *MockReleaseService {
	return &MockReleaseService{}
}

func (m *MockReleaseService) Current(ctx context.Context) (*domain.ArtifactRecord, string, error) {
	args := m.Called(ctx)
	return args.Get(0).(*domain.ArtifactRecord), args.String(1), args.Error(2)
}

func (m *MockReleaseService) CheckUpdate(ctx context.Context, clientVersion string) (*domain.UpdateDecision, error) {
	args := m.Called(ctx, clientVersion)
	return args.Get(0).(*domain.UpdateDecision), args.Error(1)
}

func (m *MockReleaseService) Download(ctx context.Context, storedFilename string) (io.ReadCloser, *domain.ArtifactRecord, error) {
	args := m.Called(ctx, storedFilename)
	var r io.ReadCloser
	if got := args.Get(0); got != nil {
		r = got.(io.ReadCloser)
	}
	return r, args.Get(1).(*domain.ArtifactRecord), args.Error(2)
}
