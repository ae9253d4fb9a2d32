package upload_test

import (
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"update-depot/internal/adapters/handlers/http/chi"
	upload2 "update-depot/internal/adapters/handlers/http/chi/v1/upload"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/service/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUploadChunkV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - chunk accepted", func(t *testing.T) {
		// Arrange
		sessionID := uuid.New()

		mockService := upload.NewMockUploadService()
		mockService.On("RecordChunk", mock.Anything, sessionID, 2, mock.Anything).
			Return(3, 4, nil)

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost,
			"/api/v1/upload/session/"+sessionID.String()+"/chunk/2",
			strings.NewReader("raw chunk bytes"))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response upload2.V1UploadChunkResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, 2, response.ChunkIndex)
		assert.Equal(t, 3, response.ReceivedCount)
		assert.Equal(t, 4, response.TotalChunks)

		mockService.AssertExpectations(t)
	})

	t.Run("error - session not found", func(t *testing.T) {
		sessionID := uuid.New()

		mockService := upload.NewMockUploadService()
		mockService.On("RecordChunk", mock.Anything, sessionID, 0, mock.Anything).
			Return(0, 0, domain.ErrSessionNotFound)

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost,
			"/api/v1/upload/session/"+sessionID.String()+"/chunk/0",
			strings.NewReader("bytes"))

		h.ServeHTTP(w, req)

		assert.Equal(t, http2.StatusNotFound, w.Code)
	})

	t.Run("error - chunk index out of range", func(t *testing.T) {
		sessionID := uuid.New()

		mockService := upload.NewMockUploadService()
		mockService.On("RecordChunk", mock.Anything, sessionID, 9, mock.Anything).
			Return(0, 0, domain.ErrInvalidChunkIndex)

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost,
			"/api/v1/upload/session/"+sessionID.String()+"/chunk/9",
			strings.NewReader("bytes"))

		h.ServeHTTP(w, req)

		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - empty body rejected before the service runs", func(t *testing.T) {
		sessionID := uuid.New()

		mockService := upload.NewMockUploadService()

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost,
			"/api/v1/upload/session/"+sessionID.String()+"/chunk/0", nil)

		h.ServeHTTP(w, req)

		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "RecordChunk",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - malformed session id", func(t *testing.T) {
		mockService := upload.NewMockUploadService()

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost,
			"/api/v1/upload/session/not-a-uuid/chunk/0", strings.NewReader("bytes"))

		h.ServeHTTP(w, req)

		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - non integer chunk index", func(t *testing.T) {
		sessionID := uuid.New()

		mockService := upload.NewMockUploadService()

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost,
			"/api/v1/upload/session/"+sessionID.String()+"/chunk/two", strings.NewReader("bytes"))

		h.ServeHTTP(w, req)

		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})
}
