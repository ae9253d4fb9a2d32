package repository

import (
	"context"
	"time"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUploadSessionRepository struct {
	mock.Mock
}

func NewMockUploadSessionRepository() *MockUploadSessionRepository {
	return &MockUploadSessionRepository{}
}

func (m *MockUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadSessionRepository) RecordChunk(ctx context.Context, id uuid.UUID, chunkIndex int, sizeBytes int64) error {
	args := m.Called(ctx, id, chunkIndex, sizeBytes)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) CountReceived(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockUploadSessionRepository) ReceivedIndices(ctx context.Context, id uuid.UUID) ([]int, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockUploadSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindAllExpired(ctx context.Context, cutoff time.Time) ([]domain.UploadSession, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.UploadSession), args.Error(1)
}

type MockArtifactRepository struct {
	mock.Mock
}

func NewMockArtifactRepository() *MockArtifactRepository {
	return &MockArtifactRepository{}
}

func (m *MockArtifactRepository) Create(ctx context.Context, record domain.ArtifactRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtifactRepository) Current(ctx context.Context) (*domain.ArtifactRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).(*domain.ArtifactRecord), args.Error(1)
}

func (m *MockArtifactRepository) FindCurrentByStoredFilename(ctx context.Context, storedFilename string) (*domain.ArtifactRecord, error) {
	args := m.Called(ctx, storedFilename)
	return args.Get(0).(*domain.ArtifactRecord), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	uploadSessionRepo *MockUploadSessionRepository
	artifactRepo      *MockArtifactRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		uploadSessionRepo: &MockUploadSessionRepository{},
		artifactRepo:      &MockArtifactRepository{},
	}
}

func (m *MockUnitOfWork) UploadSessionRepo() port.UploadSessionRepository {
	return m.uploadSessionRepo
}

func (m *MockUnitOfWork) ArtifactRepo() port.ArtifactRepository {
	return m.artifactRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetUploadSessionRepoMock() *MockUploadSessionRepository {
	return m.uploadSessionRepo
}

func (m *MockUnitOfWork) GetArtifactRepoMock() *MockArtifactRepository {
	return m.artifactRepo
}

// AssertExpectations asserts expectations on the unit of work and every
// repository mock it hands out.
func (m *MockUnitOfWork) AssertExpectations(t mock.TestingT) bool {
	ok := m.Mock.AssertExpectations(t)
	ok = m.uploadSessionRepo.AssertExpectations(t) && ok
	ok = m.artifactRepo.AssertExpectations(t) && ok
	return ok
}
