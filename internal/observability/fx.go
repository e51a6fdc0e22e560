package observability

import (
	"github.com/smallbiznis/voicepost/internal/config"
	"github.com/smallbiznis/voicepost/internal/observability/logger"
	"github.com/smallbiznis/voicepost/internal/observability/metrics"
	"github.com/smallbiznis/voicepost/internal/observability/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const serviceName = "voicepost"

var version = "dev"

// Module wires logging, tracing and metrics for the API process.
var Module = fx.Module("observability",
	fx.Provide(func(cfg config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{Environment: cfg.Environment})
	}),
	fx.Provide(func(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*sdktrace.TracerProvider, error) {
		return tracing.NewProvider(lc, tracing.Config{
			Enabled:          cfg.Tracing.Enabled,
			ServiceName:      serviceName,
			ServiceVersion:   version,
			Environment:      cfg.Environment,
			ExporterEndpoint: cfg.Tracing.ExporterEndpoint,
			ExporterProtocol: cfg.Tracing.ExporterProtocol,
			SamplingRatio:    cfg.Tracing.SamplingRatio,
		}, log)
	}),
	fx.Provide(func(cfg config.Config) (*metrics.HTTPMetrics, error) {
		return metrics.NewHTTPMetrics(metrics.Config{
			ServiceName: serviceName,
			Environment: cfg.Environment,
		})
	}),
	fx.Provide(func(cfg config.Config) *metrics.GenerationMetrics {
		return metrics.GenerationWithConfig(metrics.Config{
			ServiceName: serviceName,
			Environment: cfg.Environment,
		})
	}),
	// The tracer provider registers itself globally; force construction
	// so tracing starts with the app even though nothing injects it.
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)
