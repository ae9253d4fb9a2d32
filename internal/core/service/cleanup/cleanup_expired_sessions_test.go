package cleanup_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
	"update-depot/internal/adapters/repository"
	"update-depot/internal/adapters/storage"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/service/cleanup"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCleanupService_CleanupExpiredSessions(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := cleanup.NewCleanupService(mockUow, mockStorage, discardLogger)

	cutoff := time.Now().Add(-24 * time.Hour)
	expired := []domain.UploadSession{
		{ID: uuid.New(), FileName: "a.exe"},
		{ID: uuid.New(), FileName: "b.exe"},
	}

	mockUow.GetUploadSessionRepoMock().On("FindAllExpired", ctx, cutoff).Return(expired, nil)
	for _, session := range expired {
		mockStorage.On("DeleteChunks", ctx, session.ID).Return(nil)
		mockUow.GetUploadSessionRepoMock().On("Delete", ctx, session.ID).Return(nil)
	}

	// Act
	err := service.CleanupExpiredSessions(ctx, cutoff)

	// Assert
	assert.NoError(t, err)
	mockUow.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestCleanupService_CleanupExpiredSessions_OneFailureDoesNotStopSweep(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := cleanup.NewCleanupService(mockUow, mockStorage, discardLogger)

	cutoff := time.Now().Add(-24 * time.Hour)
	broken := domain.UploadSession{ID: uuid.New()}
	healthy := domain.UploadSession{ID: uuid.New()}

	mockUow.GetUploadSessionRepoMock().On("FindAllExpired", ctx, cutoff).
		Return([]domain.UploadSession{broken, healthy}, nil)
	mockStorage.On("DeleteChunks", ctx, broken.ID).Return(errors.New("disk unavailable"))
	mockStorage.On("DeleteChunks", ctx, healthy.ID).Return(nil)
	mockUow.GetUploadSessionRepoMock().On("Delete", ctx, healthy.ID).Return(nil)

	err := service.CleanupExpiredSessions(ctx, cutoff)

	assert.NoError(t, err)
	// the broken session is kept so the next sweep can retry it
	mockUow.GetUploadSessionRepoMock().AssertNotCalled(t, "Delete", ctx, broken.ID)
	mockStorage.AssertExpectations(t)
}

func TestCleanupService_CleanupExpiredSessions_ListFailure(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := cleanup.NewCleanupService(mockUow, mockStorage, discardLogger)

	cutoff := time.Now()
	mockUow.GetUploadSessionRepoMock().On("FindAllExpired", ctx, cutoff).
		Return([]domain.UploadSession(nil), errors.New("connection reset"))

	err := service.CleanupExpiredSessions(ctx, cutoff)

	assert.Error(t, err)
	mockStorage.AssertNotCalled(t, "DeleteChunks", ctx, mock.Anything)
}
