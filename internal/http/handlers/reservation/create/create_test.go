package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateReservation(ctx context.Context, req models.DummyReservation) (*models.Reservation, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	valid := models.DummyReservation{SessionID: "S1", DateReserve: "2023-02-24T00:00:00.000Z"}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное создание резерва",
			requestBody: valid,
			setupMock: func(m *MockService) {
				m.On("CreateReservation", mock.Anything, valid).Return(&models.Reservation{
					ID:          "R1",
					SessionID:   "S1",
					DateReserve: time.Date(2023, 2, 24, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"date_reserve":"2023-02-24T00:00:00Z"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "отсутствует id_sesion",
			requestBody:    models.DummyReservation{DateReserve: "2023-02-24T00:00:00Z"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"field id_sesion is a required field"}`,
		},
		{
			name:        "некорректная дата",
			requestBody: models.DummyReservation{SessionID: "S1", DateReserve: "yesterday"},
			setupMock: func(m *MockService) {
				m.On("CreateReservation", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("op: %w", storage.Invalid("date_reserve", "must be an ISO-8601 timestamp")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"field date_reserve must be an ISO-8601 timestamp"}`,
		},
		{
			name:        "ошибка хранилища",
			requestBody: valid,
			setupMock: func(m *MockService) {
				m.On("CreateReservation", mock.Anything, valid).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create reservation"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/reservas", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Result().Header.Get("Content-Type"))
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
