package tutorbooking

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/tutor-booking/internal/cache"
	"github.com/magabrotheeeer/tutor-booking/internal/config"
	"github.com/magabrotheeeer/tutor-booking/internal/metrics"
	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/services/booking"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateReservation(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	args := m.Called(ctx, reservation)
	if res := args.Get(0); res != nil {
		return res.(*models.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGateway) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockGateway) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockGateway) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockGateway) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(t *testing.T, db *MockGateway, limiter *rate.Limiter) http.Handler {
	t.Helper()
	logger := newNoopLogger()
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	service := booking.NewService(db, cache.Nop{}, collector, 0, logger)

	r := chi.NewRouter()
	RegisterRoutes(r, logger, service, db, collector, metrics.Handler(reg), limiter)
	return r
}

func TestRegisterRoutes(t *testing.T) {
	db := new(MockGateway)
	db.On("ListUsers", mock.Anything, models.UserFilter{Role: models.RoleStudent}).
		Return([]models.User{{ID: "u1", Role: models.RoleStudent}}, nil)
	db.On("ListUsers", mock.Anything, models.UserFilter{Role: models.RoleTutor}).
		Return([]models.User{}, nil)
	db.On("ListSessions", mock.Anything, models.SessionFilter{}).Return([]models.Session{}, nil)
	db.On("ListReservations", mock.Anything, models.ReservationFilter{}).Return([]models.Reservation{}, nil)
	db.On("Ping", mock.Anything).Return(nil)

	router := newRouter(t, db, rate.NewLimiter(rate.Inf, 1))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "студенты", method: http.MethodGet, path: "/estudiantes", expectedStatus: http.StatusOK, expectedBody: `"role":"student"`},
		{name: "репетиторы", method: http.MethodGet, path: "/tutores", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{name: "сессии", method: http.MethodGet, path: "/sesiones", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{name: "резервы", method: http.MethodGet, path: "/reservas", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{name: "состояние", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK, expectedBody: `{"status":"OK"}`},
		{name: "метрики", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK, expectedBody: "tutorbooking_http_requests_total"},
		{name: "неизвестный маршрут", method: http.MethodGet, path: "/usuarios", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestRegisterRoutes_RateLimitSkipsHealth(t *testing.T) {
	db := new(MockGateway)
	db.On("ListSessions", mock.Anything, models.SessionFilter{}).Return([]models.Session{}, nil)
	db.On("Ping", mock.Anything).Return(nil)

	router := newRouter(t, db, rate.NewLimiter(1, 1))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sesiones", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sesiones", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOpenGateway_UnknownDriver(t *testing.T) {
	_, err := openGateway(context.Background(), config.Storage{Driver: "sqlite"})
	assert.ErrorContains(t, err, `unknown storage driver "sqlite"`)
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()

	t.Run("пустой адрес отключает кеш", func(t *testing.T) {
		c, err := openCache(ctx, config.RedisConnection{}, newNoopLogger())
		require.NoError(t, err)
		assert.IsType(t, cache.Nop{}, c)
	})

	t.Run("redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()

		c, err := openCache(ctx, config.RedisConnection{Address: mr.Addr()}, newNoopLogger())
		require.NoError(t, err)
		assert.IsType(t, &cache.Cache{}, c)
		assert.NoError(t, c.Close())
	})
}
