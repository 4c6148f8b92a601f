package http

import (
	"net/http"

	"github.com/dexview/backend/config"
	"github.com/dexview/backend/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter creates and configures the Gin router. recorder may be nil.
func SetupRouter(cfg *config.Config, handler *Handler, logger zerolog.Logger, recorder *metrics.Recorder) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(mustParseTemplates())
	router.StaticFS("/static", http.FS(staticFiles()))

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	if recorder != nil {
		router.Use(MetricsMiddleware(recorder))
	}
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	router.Use(ErrorMiddleware(logger))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	if recorder != nil && cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(recorder.Handler()))
	}

	// Pages
	router.GET("/", handler.ListPage)
	router.GET("/pokemon/:id", handler.DetailPage)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		pokemon := v1.Group("/pokemon")
		{
			pokemon.GET("", handler.ListRecords)
			pokemon.GET("/:id", handler.GetRecord)
		}
	}

	return router
}
