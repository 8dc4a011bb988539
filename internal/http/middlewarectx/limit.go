// Package middlewarectx содержит middleware HTTP-слоя: ограничение частоты
// запросов и сбор метрик.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/tutor-booking/internal/config"
)

// NewLimiter создает token bucket по настройкам rate_limit.
func NewLimiter(cfg config.RateLimit) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
}

// RateLimitMiddleware отклоняет запросы сверх лимита со статусом 429.
// Лимит общий для всех маршрутов, к которым подключён middleware.
func RateLimitMiddleware(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
