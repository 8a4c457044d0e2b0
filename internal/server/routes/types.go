package routes

import (
	"github.com/aspireai/aspire-site/internal/api/handlers"
	"github.com/aspireai/aspire-site/internal/api/middleware"
	"github.com/aspireai/aspire-site/internal/metrics"
	"github.com/aspireai/aspire-site/internal/telemetry"
)

// Handlers contains all the route handlers
type Handlers struct {
	Landing *handlers.LandingHandler
	Health  *handlers.HealthHandler
}

// Middleware contains the shared middleware dependencies
type Middleware struct {
	ContactRateLimit middleware.RateLimitConfig
	Metrics          *metrics.Metrics
	Tracing          *telemetry.Tracing
}
