package routes

import (
	"io/fs"

	"github.com/aspireai/aspire-site/internal/api/middleware"
	"github.com/aspireai/aspire-site/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all routes
func Setup(router *gin.Engine, h *Handlers, m *Middleware, static fs.FS) {
	SetupLandingRoutes(router, h.Landing, static)
	SetupContactRoutes(router, h.Landing, m)
	SetupHealthRoutes(router, h.Health, m.Metrics)
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, m *Middleware) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(m.Tracing.Middleware())
	router.Use(m.Metrics.Middleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders())
}
