package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/aspireai/aspire-site/internal/api/handlers"
	"github.com/aspireai/aspire-site/internal/api/middleware"
	"github.com/aspireai/aspire-site/internal/config"
	"github.com/aspireai/aspire-site/internal/contact"
	"github.com/aspireai/aspire-site/internal/logging"
	"github.com/aspireai/aspire-site/internal/metrics"
	"github.com/aspireai/aspire-site/internal/server/routes"
	"github.com/aspireai/aspire-site/internal/telemetry"
	"github.com/aspireai/aspire-site/internal/web"
	"github.com/aspireai/aspire-site/internal/web/components"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	logger  *logging.Logger
	metrics *metrics.Metrics
	tracing *telemetry.Tracing
	client  contact.Client
}

// NewServer creates a new server instance. client delivers contact
// submissions to the Contact API.
func NewServer(cfg *config.Config, logger *logging.Logger, tracing *telemetry.Tracing, client contact.Client) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	// Forwarding headers are only honored from configured proxies; with none,
	// c.ClientIP() is the connection address.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, logging.WrapError(err, "invalid trusted proxies")
	}

	s := &Server{
		router:  router,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
		tracing: tracing,
		client:  client,
	}
	s.init()
	return s, nil
}

func (s *Server) init() {
	m := &routes.Middleware{
		ContactRateLimit: middleware.RateLimitConfig{
			RPS:   s.cfg.ContactRateRPS,
			Burst: s.cfg.ContactRateBurst,
		},
		Metrics: s.metrics,
		Tracing: s.tracing,
	}

	widget := components.ChatWidgetConfig{
		Enabled:  s.cfg.ChatWidgetEnabled,
		WidgetID: s.cfg.ChatWidgetID,
	}

	h := &routes.Handlers{
		Landing: handlers.NewLandingHandler(s.client, s.cfg.SiteBaseURL, widget, s.metrics, s.logger),
		Health:  handlers.NewHealthHandler(),
	}

	routes.SetupGlobalMiddleware(s.router, s.logger, m)
	routes.Setup(s.router, h, m, web.Static())

	s.logger.Info("All routes have been set up successfully")
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return logging.WrapError(err, "graceful shutdown failed")
	}
	return <-errCh
}
