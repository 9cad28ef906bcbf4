package metrics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector this service exports.
var Registry = prometheus.NewRegistry()

var (
	analysisStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analysis_started_total",
		Help: "Total analyses started",
	})
	analysisCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analysis_completed_total",
		Help: "Total analyses completed",
	})
	analysisFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_failed_total",
		Help: "Total analyses failed, by pipeline step",
	}, []string{"step"})
	analysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_ms",
		Help:    "Analysis duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	})

	llmRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_requests_total",
		Help: "LLM completion requests by provider and outcome",
	}, []string{"provider", "outcome"})
	llmDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "llm_request_duration_seconds",
		Help:    "LLM completion latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	}, []string{"provider"})

	jobSearches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_search_total",
		Help: "Job searches by source and outcome (ok, empty, failed)",
	}, []string{"source", "outcome"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		analysisStarted,
		analysisCompleted,
		analysisFailed,
		analysisDuration,
		llmRequests,
		llmDuration,
		jobSearches,
	)
}

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysisStarted.Inc()
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysisCompleted.Inc()
}

// IncAnalysisFailed increments the failed counter for the given step.
func IncAnalysisFailed(step string) {
	analysisFailed.WithLabelValues(step).Inc()
}

// ObserveAnalysisDuration records an analysis duration.
func ObserveAnalysisDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	analysisDuration.Observe(float64(d.Milliseconds()))
}

// ObserveLLMRequest records one completion call.
func ObserveLLMRequest(provider, outcome string, d time.Duration) {
	llmRequests.WithLabelValues(provider, outcome).Inc()
	llmDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// IncJobSearch records one job search.
func IncJobSearch(source, outcome string) {
	jobSearches.WithLabelValues(source, outcome).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(c.Writer, c.Request)
	}
}
