package routes

import (
	"github.com/aspireai/aspire-site/internal/api/handlers"
	"github.com/aspireai/aspire-site/internal/metrics"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health check and metrics endpoints
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler, m *metrics.Metrics) {
	router.GET("/health", health.Check)
	router.GET("/metrics", m.Handler())
}
