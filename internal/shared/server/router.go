package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-recommender/internal/analysis"
	"job-recommender/internal/services/health"
	"job-recommender/internal/shared/config"
	"job-recommender/internal/shared/metrics"
	"job-recommender/internal/shared/server/middleware"
	"job-recommender/internal/shared/server/respond"
	"job-recommender/internal/web"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analysis.Handler
	WebHandler      *web.Handler
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "dev" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = deps.Config.MaxUploadBytes

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(deps.Config.LLMProvider, deps.Config.JobSource)
	}
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(r)
	}
	if deps.WebHandler != nil {
		deps.WebHandler.RegisterRoutes(r)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
