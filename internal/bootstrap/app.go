package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"job-recommender/internal/analysis"
	"job-recommender/internal/jobs"
	"job-recommender/internal/llm"
	"job-recommender/internal/llm/dispatch"
	"job-recommender/internal/services/health"
	"job-recommender/internal/shared/config"
	"job-recommender/internal/shared/server"
	"job-recommender/internal/shared/telemetry"
	"job-recommender/internal/web"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Completer
	Jobs            jobs.Searcher
	AnalysisService *analysis.Service
	AnalysisHandler *analysis.Handler
	WebHandler      *web.Handler
	Health          *health.Service
}

// LLMConfig converts the process configuration into the provider config.
func LLMConfig(cfg config.Config) llm.Config {
	return llm.Config{
		Provider:     cfg.LLMProvider,
		Model:        cfg.LLMModel,
		GroqAPIKey:   cfg.GroqAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		OllamaHost:   cfg.OllamaHost,
		Timeout:      cfg.LLMTimeout,
		MaxRetries:   cfg.LLMMaxRetries,
	}
}

// JobsOptions converts the process configuration into searcher options.
func JobsOptions(cfg config.Config) jobs.Options {
	return jobs.Options{
		Source:      cfg.JobSource,
		RapidAPIKey: cfg.RapidAPIKey,
		JSearchHost: cfg.JSearchHost,
		ApifyToken:  cfg.ApifyAPIToken,
		Timeout:     cfg.JobsTimeout,
	}
}

// AnalysisOptions converts the process configuration into pipeline options.
func AnalysisOptions(cfg config.Config) analysis.Options {
	return analysis.Options{
		Parallel:          cfg.PipelineParallel,
		FailOnSearchError: cfg.JobsOnFailure == "fail",
		DefaultLocation:   cfg.DefaultLocation,
	}
}

// NewService builds the pipeline service from configuration. It is shared by
// the HTTP server, the tool server and the CLI.
func NewService(cfg config.Config) (*analysis.Service, llm.Completer, jobs.Searcher) {
	completer := dispatch.New(LLMConfig(cfg))
	searcher := jobs.New(JobsOptions(cfg))
	return analysis.NewService(completer, searcher, AnalysisOptions(cfg)), completer, searcher
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if _, err := llm.ParseProvider(cfg.LLMProvider); err != nil {
		// Startup continues so /health stays reachable; every LLM call reports the error.
		telemetry.Error("bootstrap.unknown_llm_provider", map[string]any{"provider": cfg.LLMProvider, "error": err})
	}

	svc, completer, searcher := NewService(cfg)
	app := &App{
		Config:          cfg,
		LLM:             completer,
		Jobs:            searcher,
		AnalysisService: svc,
		AnalysisHandler: analysis.NewHandler(svc, cfg.MaxUploadBytes),
		WebHandler:      web.NewHandler(svc, cfg.MaxUploadBytes),
		Health:          health.NewService(cfg.LLMProvider, cfg.JobSource),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		WebHandler:      app.WebHandler,
		Health:          app.Health,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"llm_provider": cfg.LLMProvider,
		"llm_model":    cfg.LLMModel,
		"job_source":   cfg.JobSource,
		"parallel":     cfg.PipelineParallel,
	})
	return app, nil
}
