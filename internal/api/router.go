package api

import (
	"github.com/Conceptual-Machines/lounge-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/lounge-api/internal/api/middleware"
	"github.com/Conceptual-Machines/lounge-api/internal/config"
	"github.com/Conceptual-Machines/lounge-api/internal/lyrics"
	"github.com/Conceptual-Machines/lounge-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, version string, recorder metrics.Recorder, gen *lyrics.Generator) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(recorder))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// API routes v1, auth depends on AUTH_MODE
	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(apimiddleware.GatewayAuth())
	} else {
		v1.Use(apimiddleware.NoAuth())
	}
	{
		v1.GET("/keys", handlers.ListKeys)

		compositionHandler := handlers.NewCompositionHandler(cfg, gen, recorder)
		v1.GET("/arrangements/:key", compositionHandler.GetArrangement)
		v1.GET("/arrangements/:key/notes", compositionHandler.GetArrangementNotes)
		v1.POST("/lyrics", compositionHandler.GenerateLyrics)
		v1.POST("/playback", compositionHandler.PlanPlayback)
	}

	return router
}
