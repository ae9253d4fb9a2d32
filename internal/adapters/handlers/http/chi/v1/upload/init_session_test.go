package upload_test

import (
	"bytes"
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

func TestInitSessionV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - session created", func(t *testing.T) {
		// Arrange
		expectedSessionID := uuid.New()

		mockService := upload.NewMockUploadService()
		mockService.On("InitSession",
			mock.Anything, "installer.exe", int64(1048576), 4, "2.0.0", "1.5.0").
			Return(expectedSessionID, nil)

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		requestBody := upload2.V1InitSessionRequest{
			FileName:       "installer.exe",
			FileSize:       1048576,
			TotalChunks:    4,
			CurrentVersion: "2.0.0",
			MinVersion:     "1.5.0",
		}
		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response upload2.V1InitSessionResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, expectedSessionID, response.SessionID)

		mockService.AssertExpectations(t)
	})

	t.Run("error - validation failures map to 400", func(t *testing.T) {
		tests := []struct {
			name       string
			serviceErr error
		}{
			{name: "missing field", serviceErr: domain.ErrMissingField},
			{name: "invalid version", serviceErr: domain.ErrInvalidVersion},
			{name: "invalid extension", serviceErr: domain.ErrInvalidExtension},
			{name: "file too big", serviceErr: domain.ErrFileSizeTooBig},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockService := upload.NewMockUploadService()
				mockService.On("InitSession",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(uuid.Nil, tt.serviceErr)

				handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
				h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
				w := httptest.NewRecorder()

				jsonBody, _ := json.Marshal(upload2.V1InitSessionRequest{FileName: "installer.exe"})
				req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))

				h.ServeHTTP(w, req)

				assert.Equal(t, http2.StatusBadRequest, w.Code)
			})
		}
	})

	t.Run("error - malformed json", func(t *testing.T) {
		mockService := upload.NewMockUploadService()

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", strings.NewReader("{not json"))

		h.ServeHTTP(w, req)

		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "InitSession",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - service failure maps to 503", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		mockService.On("InitSession",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, assert.AnError)

		handler := upload2.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "", 64<<20)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(upload2.V1InitSessionRequest{FileName: "installer.exe"})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))

		h.ServeHTTP(w, req)

		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
	})
}
