// Package tutorbooking собирает HTTP-сервер сервиса бронирования.
package tutorbooking

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	// swagger-спецификация регистрируется в init
	_ "github.com/magabrotheeeer/tutor-booking/docs"
	"github.com/magabrotheeeer/tutor-booking/internal/http/handlers/health"
	reservationcreate "github.com/magabrotheeeer/tutor-booking/internal/http/handlers/reservation/create"
	reservationlist "github.com/magabrotheeeer/tutor-booking/internal/http/handlers/reservation/list"
	sessionlist "github.com/magabrotheeeer/tutor-booking/internal/http/handlers/session/list"
	userlist "github.com/magabrotheeeer/tutor-booking/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/tutor-booking/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tutor-booking/internal/metrics"
	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/services/booking"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *booking.Service, db health.Pinger,
	collector *metrics.Collector, metricsHandler http.Handler, limiter *rate.Limiter) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware(collector),
	)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
		r.Get("/estudiantes", userlist.New(logger, service, models.RoleStudent).ServeHTTP)
		r.Get("/tutores", userlist.New(logger, service, models.RoleTutor).ServeHTTP)
		r.Get("/sesiones", sessionlist.New(logger, service).ServeHTTP)
		r.Get("/reservas", reservationlist.New(logger, service).ServeHTTP)
		r.Post("/reservas", reservationcreate.New(logger, service).ServeHTTP)
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", metricsHandler)
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
