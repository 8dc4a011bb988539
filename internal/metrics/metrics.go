// Package metrics собирает метрики Prometheus сервиса бронирования
// и отдаёт их по HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector хранит зарегистрированные метрики.
type Collector struct {
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	reservationsCreated prometheus.Counter
	cacheRequests       *prometheus.CounterVec
}

// NewCollector создаёт Collector и регистрирует метрики в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutorbooking_http_requests_total",
			Help: "Количество HTTP-запросов по маршруту и статусу",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tutorbooking_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запросов (секунды)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tutorbooking_reservations_created_total",
			Help: "Количество созданных резервов",
		}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutorbooking_cache_requests_total",
			Help: "Обращения к кешу по результату (hit/miss)",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.reservationsCreated,
		c.cacheRequests,
	)
	return c
}

// ObserveHTTPRequest учитывает один обработанный запрос.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordReservationCreated учитывает созданный резерв.
func (c *Collector) RecordReservationCreated() {
	c.reservationsCreated.Inc()
}

// RecordCacheHit учитывает попадание в кеш.
func (c *Collector) RecordCacheHit() {
	c.cacheRequests.WithLabelValues("hit").Inc()
}

// RecordCacheMiss учитывает промах кеша.
func (c *Collector) RecordCacheMiss() {
	c.cacheRequests.WithLabelValues("miss").Inc()
}

// Handler возвращает обработчик /metrics для указанного gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
