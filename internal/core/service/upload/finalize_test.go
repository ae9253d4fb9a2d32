package upload_test

import (
	"context"
	"strings"
	"testing"
	"update-depot/internal/adapters/eventbroker"
	"update-depot/internal/adapters/repository"
	"update-depot/internal/adapters/storage"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/service/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Finalize_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockEventPublisher()
	service := upload.NewUploadService(mockUow, mockStorage, mockEvents, defaultCfg, discardLogger)

	sessionID := uuid.New()
	session := &domain.UploadSession{
		ID:             sessionID,
		FileName:       "installer.exe",
		TotalChunks:    3,
		CurrentVersion: "2.0.0",
		MinVersion:     "1.5.0",
	}
	previous := &domain.ArtifactRecord{ID: 7, StoredFilename: "1000_installer.exe"}

	destNameMatcher := mock.MatchedBy(func(name string) bool {
		return strings.HasSuffix(name, "_installer.exe")
	})

	mockUow.GetUploadSessionRepoMock().On("FindByID", ctx, sessionID).Return(session, nil)
	// arrival order was 2,0,1; merge must receive ascending indices
	mockUow.GetUploadSessionRepoMock().On("ReceivedIndices", ctx, sessionID).Return([]int{0, 1, 2}, nil)
	mockStorage.On("MergeChunks", ctx, sessionID, []int{0, 1, 2}, destNameMatcher).Return(int64(3072), nil)

	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetArtifactRepoMock().On("Current", ctx).Return(previous, nil)
	mockUow.GetArtifactRepoMock().On("Create", ctx, mock.MatchedBy(func(r domain.ArtifactRecord) bool {
		return r.CurrentVersion == "2.0.0" &&
			r.MinVersion == "1.5.0" &&
			r.OriginalName == "installer.exe" &&
			r.SizeBytes == 3072 &&
			strings.HasSuffix(r.StoredFilename, "_installer.exe")
	})).Return(int64(8), nil)
	mockUow.GetUploadSessionRepoMock().On("Delete", ctx, sessionID).Return(nil)

	mockStorage.On("DeleteChunks", ctx, sessionID).Return(nil)
	mockStorage.On("DeleteArtifact", ctx, previous.StoredFilename).Return(nil)
	mockEvents.On("PublishReleasePublished", ctx, mock.Anything).Return(nil)

	// Act
	record, err := service.Finalize(ctx, sessionID)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int64(8), record.ID)
	assert.Equal(t, "2.0.0", record.CurrentVersion)
	assert.Equal(t, int64(3072), record.SizeBytes)
	mockUow.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestUploadService_Finalize_Incomplete(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := upload.NewUploadService(mockUow, mockStorage, nil, defaultCfg, discardLogger)

	sessionID := uuid.New()
	session := &domain.UploadSession{ID: sessionID, FileName: "installer.exe", TotalChunks: 3}

	mockUow.GetUploadSessionRepoMock().On("FindByID", ctx, sessionID).Return(session, nil)
	mockUow.GetUploadSessionRepoMock().On("ReceivedIndices", ctx, sessionID).Return([]int{0, 2}, nil)

	record, err := service.Finalize(ctx, sessionID)

	var incomplete *domain.IncompleteUploadError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 2, incomplete.Received)
	assert.Equal(t, 3, incomplete.Total)
	assert.Nil(t, record)
	// catalog untouched
	mockUow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	mockStorage.AssertNotCalled(t, "MergeChunks", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_Finalize_CorruptSession(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := upload.NewUploadService(mockUow, mockStorage, nil, defaultCfg, discardLogger)

	sessionID := uuid.New()
	session := &domain.UploadSession{ID: sessionID, FileName: "installer.exe", TotalChunks: 2}

	mockUow.GetUploadSessionRepoMock().On("FindByID", ctx, sessionID).Return(session, nil)
	mockUow.GetUploadSessionRepoMock().On("ReceivedIndices", ctx, sessionID).Return([]int{0, 1}, nil)
	mockStorage.On("MergeChunks", ctx, sessionID, []int{0, 1}, mock.Anything).
		Return(int64(0), domain.ErrChunkMissing)

	record, err := service.Finalize(ctx, sessionID)

	assert.ErrorIs(t, err, domain.ErrCorruptSession)
	assert.Nil(t, record)
	// session kept for retry, catalog untouched
	mockUow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	mockUow.GetUploadSessionRepoMock().AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUploadService_Finalize_LostRaceDiscardsMergedFile(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := upload.NewUploadService(mockUow, mockStorage, nil, defaultCfg, discardLogger)

	sessionID := uuid.New()
	session := &domain.UploadSession{ID: sessionID, FileName: "installer.exe", TotalChunks: 1}

	// session exists for the pre-checks but is gone inside the publish
	// transaction: a concurrent finalize already published and purged it
	mockUow.GetUploadSessionRepoMock().On("FindByID", ctx, sessionID).Return(session, nil).Once()
	mockUow.GetUploadSessionRepoMock().On("ReceivedIndices", ctx, sessionID).Return([]int{0}, nil)
	mockStorage.On("MergeChunks", ctx, sessionID, []int{0}, mock.Anything).Return(int64(10), nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetUploadSessionRepoMock().On("FindByID", ctx, sessionID).
		Return((*domain.UploadSession)(nil), domain.ErrSessionNotFound).Once()
	mockStorage.On("DeleteArtifact", ctx, mock.Anything).Return(nil)

	record, err := service.Finalize(ctx, sessionID)

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, record)
	mockStorage.AssertCalled(t, "DeleteArtifact", ctx, mock.Anything)
	mockUow.GetArtifactRepoMock().AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
