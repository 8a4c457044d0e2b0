package routes

import (
	"github.com/aspireai/aspire-site/internal/api/handlers"
	"github.com/aspireai/aspire-site/internal/api/middleware"
	"github.com/aspireai/aspire-site/internal/metrics"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the contact form endpoint
func SetupContactRoutes(router *gin.Engine, landing *handlers.LandingHandler, m *Middleware) {
	limit := m.ContactRateLimit
	limit.OnLimited = func(*gin.Context) {
		m.Metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRateLimited).Inc()
	}

	router.POST("/contact",
		middleware.RateLimitMiddleware(limit),
		middleware.BindContactRequest(),
		landing.SubmitContact,
	)
}
