package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// PageCacheHits counts page-cache hits by cache key kind.
	PageCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_page_cache_hits_total",
		Help: "Total number of page cache hits",
	}, []string{"kind"})

	// PageCacheMisses counts page-cache misses by cache key kind.
	PageCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_page_cache_misses_total",
		Help: "Total number of page cache misses",
	}, []string{"kind"})

	// ActiveWebSockets tracks currently open chat websocket connections.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "yatube_active_websockets",
		Help: "Number of active websocket connections",
	})
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The underlying collectors register once; repeat calls (tests spin up many
// servers) return the same instance.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// MetricsMiddleware returns the request-level Prometheus middleware handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
