// Package calculator parses calculator service configuration and launches
// the service.
package calculator

import (
	"context"
	"io"

	entrypoint "github.com/louisbranch/grpc-calculator/internal/platform/cmd"
	"github.com/louisbranch/grpc-calculator/internal/platform/logging"
	server "github.com/louisbranch/grpc-calculator/internal/services/calculator/app"
	"go.uber.org/zap"
)

// Config holds calculator command configuration. It is read from the
// environment only; the command takes no flags. PORT falls back to 50051 when
// unset or empty.
type Config struct {
	Port        uint16 `env:"PORT" envDefault:"50051"`
	LogLevel    string `env:"CALCULATOR_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	MetricsAddr string `env:"CALCULATOR_METRICS_ADDR" validate:"omitempty,hostname_port"`
}

// ParseConfig resolves Config from the environment. A PORT that is not an
// unsigned 16-bit decimal integer is returned as an error and nothing is
// bound. Signs ("+80") and surrounding whitespace are rejected; leading zeros
// are accepted.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the calculator gRPC service and blocks until ctx is cancelled.
// The startup line is written to stdout.
func Run(ctx context.Context, cfg Config, stdout io.Writer) error {
	logger, flush, err := logging.New(cfg.LogLevel, entrypoint.ServiceCalculator)
	if err != nil {
		return err
	}
	defer flush()

	logger.Debug("resolved configuration",
		zap.Uint16("port", cfg.Port),
		zap.String("metrics_addr", cfg.MetricsAddr),
	)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCalculator, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port, server.Options{
			MetricsAddr: cfg.MetricsAddr,
			Logger:      logger,
			Stdout:      stdout,
		})
	})
}
