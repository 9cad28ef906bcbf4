package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(jobSearches.WithLabelValues("jsearch", "failed"))
	IncJobSearch("jsearch", "failed")
	assert.Equal(t, before+1, testutil.ToFloat64(jobSearches.WithLabelValues("jsearch", "failed")))

	before = testutil.ToFloat64(llmRequests.WithLabelValues("groq", "ok"))
	ObserveLLMRequest("groq", "ok", 20*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(llmRequests.WithLabelValues("groq", "ok")))
}

func TestHandlerRendersPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncAnalysisStarted()
	ObserveAnalysisDuration(1500 * time.Millisecond)

	router := gin.New()
	router.GET("/metrics", Handler())

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "# TYPE analysis_started_total counter")
	assert.Contains(t, body, "analysis_duration_ms_bucket{le=\"2000\"}")
}
