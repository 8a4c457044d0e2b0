package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aspireai/aspire-site/internal/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config selects where spans are exported.
type Config struct {
	Endpoint     string
	ServiceName  string
	SamplingRate float64
}

// Enabled reports whether an OTLP endpoint was configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// Tracing owns the tracer provider installed for the process.
type Tracing struct {
	cfg      Config
	provider *sdktrace.TracerProvider
}

// Setup installs a global TracerProvider. Without an endpoint a no-op
// provider is installed and Middleware becomes a pass-through.
func Setup(ctx context.Context, cfg Config, logger *logging.Logger) (*Tracing, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled() {
		logger.Info("OTel tracing disabled (OTEL_EXPORTER_OTLP_ENDPOINT not set)")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return &Tracing{cfg: cfg}, nil
	}

	logger.Info("OTel tracing enabled: endpoint=%s service=%s sampling=%.2f",
		cfg.Endpoint, cfg.ServiceName, cfg.SamplingRate)

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(stripScheme(cfg.Endpoint))}
	if !strings.HasPrefix(cfg.Endpoint, "https://") {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exp, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
		resource.WithFromEnv(),
		resource.WithProcess(),
	)
	if err != nil {
		logger.Warn("OTel resource detection failed: %v", err)
		res = resource.Empty()
	}

	var sampler sdktrace.Sampler
	if cfg.SamplingRate >= 1.0 {
		sampler = sdktrace.AlwaysSample()
	} else {
		sampler = sdktrace.TraceIDRatioBased(cfg.SamplingRate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)

	return &Tracing{cfg: cfg, provider: tp}, nil
}

// Middleware returns the otelgin middleware, skipping health and metrics routes.
func (t *Tracing) Middleware() gin.HandlerFunc {
	if !t.cfg.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}
	return otelgin.Middleware(t.cfg.ServiceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health" && r.URL.Path != "/metrics"
		}),
	)
}

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

func stripScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimRight(endpoint, "/")
}
