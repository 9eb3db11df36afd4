package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generations
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iacgen_generations_total",
			Help: "Number of generation actions by category and result",
		},
		[]string{"category", "result"}, // result: success|error
	)
	GenerationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "iacgen_generation_duration_seconds",
			Help:    "Histogram of end-to-end generation durations in seconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8), // 1s..128s
		},
	)

	// LLM
	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iacgen_llm_requests_total",
			Help: "Number of LLM requests by model",
		},
		[]string{"model"},
	)

	// Artifacts
	Downloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iacgen_artifact_downloads_total",
			Help: "Artifact downloads by category",
		},
		[]string{"category"},
	)

	// Result store
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iacgen_result_store_ops_total",
			Help: "Result store operations performed",
		},
		[]string{"op"}, // op: get|put|delete
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "iacgen_sessions_active",
			Help: "Current number of sessions holding a result",
		},
	)

	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	HTTPErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of HTTP request errors.",
		},
		[]string{"method", "path", "status"},
	)

	// Errors
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iacgen_errors_total",
			Help: "Errors encountered in components",
		},
		[]string{"component", "type"},
	)
)

func init() {
	prometheus.MustRegister(
		// Generations
		GenerationsTotal,
		GenerationDurationSeconds,
		// LLM
		LLMRequests,
		// Artifacts
		Downloads,
		// Store
		StoreOps,
		ActiveSessions,
		// HTTP
		HTTPRequests,
		HTTPRequestDuration,
		HTTPErrors,
		// Errors
		Errors,
	)
}

func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	_ = http.ListenAndServe(addr, nil)
}

// Generations
func IncGeneration(category, result string) {
	GenerationsTotal.WithLabelValues(category, result).Inc()
}

func ObserveGenerationDuration(d time.Duration) {
	GenerationDurationSeconds.Observe(d.Seconds())
}

// LLM
func IncLLMRequest(model string) {
	LLMRequests.WithLabelValues(model).Inc()
}

// Artifacts
func IncDownload(category string) {
	Downloads.WithLabelValues(category).Inc()
}

// Result store
func IncStoreOp(op string) {
	StoreOps.WithLabelValues(op).Inc()
}

func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// HTTP
func ObserveHTTPRequest(method, path, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, path).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

func IncHTTPError(method, path, status string) {
	HTTPErrors.WithLabelValues(method, path, status).Inc()
}

// Errors
func IncError(component, typ string) {
	Errors.WithLabelValues(component, typ).Inc()
}
