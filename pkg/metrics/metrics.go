package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecommerce_agent_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ecommerce_agent_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecommerce_agent_questions_total",
			Help: "Questions processed by outcome (ok or the failing stage).",
		},
		[]string{"outcome"},
	)

	stageDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ecommerce_agent_stage_duration_seconds",
			Help:    "Duration of each question pipeline stage.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"stage"},
	)

	importRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecommerce_agent_import_rows_total",
			Help: "Rows read by the CSV importer by table and result.",
		},
		[]string{"table", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		questionsTotal,
		stageDurationSeconds,
		importRowsTotal,
	)
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, path, statusLabel).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// ObserveQuestion registra o resultado final de uma pergunta
func ObserveQuestion(outcome string) {
	questionsTotal.WithLabelValues(outcome).Inc()
}

func ObserveStage(stage string, duration time.Duration) {
	stageDurationSeconds.WithLabelValues(stage).Observe(duration.Seconds())
}

func ObserveImport(table string, loaded, skipped int) {
	importRowsTotal.WithLabelValues(table, "loaded").Add(float64(loaded))
	importRowsTotal.WithLabelValues(table, "skipped").Add(float64(skipped))
}
