package observability

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/animalloo/animalloo-backend/internal/platform/envutil"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

// Metrics holds the HTTP and dependency collectors. Graph, upstream and LLM
// call metrics live next to their clients and share the default registry.
type Metrics struct {
	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge
	dbStats     *prometheus.GaugeVec
	redisUp     prometheus.Gauge
	redisPing   prometheus.Gauge
	graphUp     prometheus.Gauge
	graphPing   prometheus.Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

func Current() *Metrics {
	return instance
}

func scrapeInterval() time.Duration {
	return envutil.Seconds("METRICS_SCRAPE_INTERVAL_SECONDS", 10*time.Second)
}

// Init registers the collectors once. It returns nil when metrics are disabled,
// and every method on a nil *Metrics is a no-op.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = &Metrics{
			apiRequests: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "animalloo",
				Name:      "api_requests_total",
				Help:      "HTTP requests by method, route and status.",
			}, []string{"method", "route", "status"}),
			apiLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "animalloo",
				Name:      "api_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
			}, []string{"method", "route", "status"}),
			apiInflight: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "animalloo",
				Name:      "api_inflight_requests",
				Help:      "HTTP requests currently being served.",
			}),
			dbStats: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "animalloo",
				Name:      "db_stats",
				Help:      "Database connection pool stats.",
			}, []string{"metric"}),
			redisUp: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "animalloo",
				Name:      "redis_up",
				Help:      "Redis connectivity (1=up, 0=down).",
			}),
			redisPing: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "animalloo",
				Name:      "redis_ping_seconds",
				Help:      "Redis ping latency in seconds.",
			}),
			graphUp: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "animalloo",
				Name:      "graph_up",
				Help:      "Graph endpoint reachability (1=up, 0=down).",
			}),
			graphPing: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "animalloo",
				Name:      "graph_ping_seconds",
				Help:      "Graph endpoint ASK round trip in seconds.",
			}),
		}
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

// Handler serves the default registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.Handler()
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	interval := scrapeInterval()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					if log != nil {
						log.Warn("metrics: db stats unavailable", "error", err)
					}
					continue
				}
				stats := sqlDB.Stats()
				m.dbStats.WithLabelValues("open_connections").Set(float64(stats.OpenConnections))
				m.dbStats.WithLabelValues("in_use").Set(float64(stats.InUse))
				m.dbStats.WithLabelValues("idle").Set(float64(stats.Idle))
				m.dbStats.WithLabelValues("wait_count").Set(float64(stats.WaitCount))
				m.dbStats.WithLabelValues("wait_duration_seconds").Set(stats.WaitDuration.Seconds())
				m.dbStats.WithLabelValues("max_open_connections").Set(float64(stats.MaxOpenConnections))
			}
		}
	}()
}

func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, addr string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	interval := scrapeInterval()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = rdb.Close()
				return
			case <-ticker.C:
				start := time.Now()
				if err := rdb.Ping(ctx).Err(); err != nil {
					m.redisUp.Set(0)
					if log != nil {
						log.Warn("metrics: redis ping failed", "error", err)
					}
					continue
				}
				m.redisUp.Set(1)
				m.redisPing.Set(time.Since(start).Seconds())
			}
		}
	}()
}

// Pinger is the graph client's reachability probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func (m *Metrics) StartGraphCollector(ctx context.Context, log *logger.Logger, graph Pinger) {
	if m == nil || graph == nil {
		return
	}
	interval := scrapeInterval()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				start := time.Now()
				if err := graph.Ping(ctx); err != nil {
					m.graphUp.Set(0)
					if log != nil {
						log.Warn("metrics: graph ping failed", "error", err)
					}
					continue
				}
				m.graphUp.Set(1)
				m.graphPing.Set(time.Since(start).Seconds())
			}
		}
	}()
}
