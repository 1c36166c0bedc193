// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, article mutations, votes,
// asset files, and database operations.
package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"blog-platform/internal/domain"
)

const namespace = "blog_platform"

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Article metrics - track aggregate mutations
	ArticleEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "events_total",
			Help:      "Total number of article mutations by event",
		},
		[]string{"event"},
	)

	// Vote metrics - track ledger mutations and recounts
	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "votes",
			Name:      "total",
			Help:      "Total number of vote operations by direction and action",
		},
		[]string{"direction", "action"},
	)

	// Asset metrics - track upload acceptance and file releases
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assets",
			Name:      "uploads_total",
			Help:      "Total number of accepted/rejected uploads by kind and result",
		},
		[]string{"kind", "result"},
	)

	FilesReleasedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assets",
			Name:      "files_released_total",
			Help:      "Total number of stored files deleted by kind",
		},
		[]string{"kind"},
	)

	// Database metrics - track connection pool health
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "connection_pool_size",
			Help:      "Database connection pool size by state",
		},
		[]string{"state"},
	)
)

// ObserveUpload records the outcome of an upload acceptance attempt.
func ObserveUpload(kind string, err error) {
	result := "accepted"
	switch {
	case errors.Is(err, domain.ErrInvalidFileType):
		result = "invalid_type"
	case errors.Is(err, domain.ErrFileTooLarge):
		result = "too_large"
	case err != nil:
		result = "error"
	}
	UploadsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveVote records one vote-ledger operation.
func ObserveVote(direction, action string) {
	VotesTotal.WithLabelValues(direction, action).Inc()
}

// PoolStatsCollector periodically samples pgx pool statistics.
type PoolStatsCollector struct {
	pool     *pgxpool.Pool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a collector for the given pool.
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return &PoolStatsCollector{
		pool:     pool,
		stopChan: make(chan struct{}),
	}
}

// Start begins sampling at the given interval.
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.pool.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector.
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}
