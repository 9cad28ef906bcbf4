package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-recommender/internal/jobs"
	"job-recommender/internal/llm"
	"job-recommender/internal/llm/ollama"
	"job-recommender/internal/shared/config"
)

func TestBuildWiresConfiguredBackends(t *testing.T) {
	cfg := config.Config{
		LLMProvider:     "ollama",
		OllamaHost:      "http://127.0.0.1:1",
		LLMTimeout:      time.Second,
		JobSource:       "linkedin",
		JobsOnFailure:   "fail",
		DefaultLocation: "India",
		MaxUploadBytes:  1 << 20,
	}

	app, err := Build(cfg)

	require.NoError(t, err)
	assert.Equal(t, "dev", app.Config.Env)
	assert.IsType(t, &ollama.Client{}, llm.Base(app.LLM))
	assert.IsType(t, &jobs.Apify{}, app.Jobs)
	assert.True(t, app.AnalysisService.Options.FailOnSearchError)
	assert.Equal(t, "India", app.AnalysisService.Options.DefaultLocation)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestBuildToleratesUnknownProvider(t *testing.T) {
	app, err := Build(config.Config{LLMProvider: "bard"})

	require.NoError(t, err)
	_, callErr := app.LLM.Complete(t.Context(), llm.NewRequest("hi", 1))
	var unknown *llm.UnknownProviderError
	assert.ErrorAs(t, callErr, &unknown)
}

func TestAnalysisOptionsDegradeByDefault(t *testing.T) {
	opts := AnalysisOptions(config.Config{JobsOnFailure: "degrade", PipelineParallel: true})
	assert.False(t, opts.FailOnSearchError)
	assert.True(t, opts.Parallel)
}
