package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aspireai/aspire-site/internal/config"
	"github.com/aspireai/aspire-site/internal/logging"
	"github.com/aspireai/aspire-site/internal/server"
	"github.com/aspireai/aspire-site/internal/service"
	"github.com/aspireai/aspire-site/internal/telemetry"
	"github.com/aspireai/aspire-site/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger configuration
	logConfig := &logging.Config{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		MaxSize:     100,
		MaxBackups:  3,
		MaxAge:      7,
		LogRequests: cfg.LogRequests,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting Aspire site %s in %s mode", version.GetVersionString(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:     cfg.OTLPEndpoint,
		ServiceName:  cfg.OTelServiceName,
		SamplingRate: cfg.OTelSamplingRate,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	contactAPI, err := service.NewContactAPIService(cfg.BackendURL, cfg.ContactTimeout)
	if err != nil {
		logger.Error("Failed to configure Contact API: %v", err)
		os.Exit(1)
	}
	logger.Info("Contact submissions go to %s", contactAPI.Endpoint())

	srv, err := server.NewServer(cfg, logger, tracing, contactAPI)
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
