package metrics

import (
	"net/http"
	"runtime"
	"time"

	"github.com/athapong/notion-mcp/pkg/blocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// System metrics
	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_bytes",
		Help: "Current system memory usage",
	})

	SystemGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_goroutines",
		Help: "Number of goroutines",
	})

	// Tool metrics
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcp_tool_calls_total",
			Help: "Total number of tool calls by outcome",
		},
		[]string{"tool", "status"},
	)

	// Store metrics
	StoreRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notion_requests_total",
			Help: "Total number of Notion API requests",
		},
		[]string{"operation", "status"},
	)

	StoreRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notion_request_duration_seconds",
			Help:    "Time spent waiting on the Notion API, retries included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Converter metrics
	ConvertedBlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "converted_blocks_total",
			Help: "Blocks produced from markdown or rendered to markdown",
		},
		[]string{"direction", "type"},
	)
)

// Conversion directions.
const (
	FromMarkdown = "from_markdown"
	ToMarkdown   = "to_markdown"
)

// ObserveBlocks counts every block of tree, children included.
func ObserveBlocks(direction string, tree []*blocks.Block) {
	blocks.Walk(tree, func(b *blocks.Block, _ int) {
		ConvertedBlocks.WithLabelValues(direction, string(b.Type)).Inc()
	})
}

// ObserveRequest records one store call.
func ObserveRequest(operation, status string, started time.Time) {
	StoreRequests.WithLabelValues(operation, status).Inc()
	StoreRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// UpdateSystemMetrics updates system-level metrics
func UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	SystemMemoryUsage.Set(float64(m.Alloc))
	SystemGoroutines.Set(float64(runtime.NumGoroutine()))
}

// Handler serves the default registry, refreshing system gauges per scrape.
func Handler() http.Handler {
	h := promhttp.Handler()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		UpdateSystemMetrics()
		h.ServeHTTP(w, r)
	})
}
