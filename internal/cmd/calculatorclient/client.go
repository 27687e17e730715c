// Package calculatorclient parses calculator client flags and issues a single
// Calculate call.
package calculatorclient

//go:generate mockgen -destination=../../services/calculator/mocks/calculator_client.go -package=mocks github.com/louisbranch/grpc-calculator/api/gen/go/calculator/v1 CalculatorClient

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	calculatorv1 "github.com/louisbranch/grpc-calculator/api/gen/go/calculator/v1"
	entrypoint "github.com/louisbranch/grpc-calculator/internal/platform/cmd"
	"github.com/louisbranch/grpc-calculator/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/grpc-calculator/internal/platform/grpc"
	_ "github.com/louisbranch/grpc-calculator/internal/platform/grpc/brotli"
	"github.com/louisbranch/grpc-calculator/internal/platform/logging"
	"github.com/louisbranch/grpc-calculator/internal/platform/timeouts"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	_ "google.golang.org/grpc/encoding/gzip"
)

// Operation names accepted by the -operation flag.
const (
	OperationAdd      = "add"
	OperationSubtract = "subtract"
)

// Config holds calculator client configuration.
type Config struct {
	Server      string        `env:"CALCULATOR_SERVER"`
	Operation   string        `validate:"oneof=add subtract"`
	A           float64
	B           float64
	Plaintext   bool          `env:"CALCULATOR_PLAINTEXT"`
	Compression string        `env:"CALCULATOR_COMPRESSION" validate:"omitempty,oneof=gzip br"`
	Timeout     time.Duration `env:"CALCULATOR_TIMEOUT" validate:"gte=0"`
	WaitHealth  bool          `env:"CALCULATOR_WAIT_HEALTH"`
	LogLevel    string        `env:"CALCULATOR_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
}

// ParseConfig parses environment defaults and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Timeout: timeouts.GRPCRequest}
	fs.StringVar(&cfg.Server, "server", "", "The address of the calculator server (default "+discovery.DefaultGRPCAddr(discovery.ServiceCalculator)+")")
	fs.Func("operation", "The operation to perform: add or subtract", func(value string) error {
		cfg.Operation = strings.ToLower(strings.TrimSpace(value))
		return nil
	})
	fs.Float64Var(&cfg.A, "a", 0, "The first operand")
	fs.Float64Var(&cfg.B, "b", 0, "The second operand")
	fs.BoolVar(&cfg.Plaintext, "plaintext", false, "Use a plaintext connection instead of TLS")
	fs.StringVar(&cfg.Compression, "compression", "", "Request compression: gzip or br")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Deadline for the Calculate call")
	fs.BoolVar(&cfg.WaitHealth, "wait-health", false, "Wait for the server health check before calling")

	// Flags share fields with env tags, so env values become the flag defaults.
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.Server = discovery.OrDefaultGRPCAddr(cfg.Server, discovery.ServiceCalculator)
	return cfg, nil
}

// Run dials the server, performs one Calculate call, and prints the result.
func Run(ctx context.Context, cfg Config, stdout io.Writer) error {
	logger, flush, err := logging.New(cfg.LogLevel, entrypoint.ServiceCalculatorClient)
	if err != nil {
		return err
	}
	defer flush()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCalculatorClient, func(ctx context.Context) error {
		opts := platformgrpc.ClientDialOptions(cfg.Plaintext)
		var conn *grpc.ClientConn
		if cfg.WaitHealth {
			conn, err = platformgrpc.DialWithHealth(ctx, nil, cfg.Server, timeouts.GRPCDial, logger.Sugar(), opts...)
		} else {
			conn, err = platformgrpc.Dial(nil, cfg.Server, opts...)
		}
		if err != nil {
			return err
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Warn("close calculator connection", zap.Error(err))
			}
		}()

		result, err := Calculate(ctx, calculatorv1.NewCalculatorClient(conn), cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, strconv.FormatFloat(float64(result), 'g', -1, 32))
		return err
	})
}

// Calculate sends cfg's operation to client under cfg.Timeout.
func Calculate(ctx context.Context, client calculatorv1.CalculatorClient, cfg Config) (float32, error) {
	op, err := ParseOperation(cfg.Operation)
	if err != nil {
		return 0, err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var callOpts []grpc.CallOption
	if cfg.Compression != "" {
		callOpts = append(callOpts, grpc.UseCompressor(cfg.Compression))
	}
	resp, err := client.Calculate(ctx, &calculatorv1.BinaryOperation{
		FirstOperand:  float32(cfg.A),
		SecondOperand: float32(cfg.B),
		Operation:     op,
	}, callOpts...)
	if err != nil {
		return 0, errors.Wrapf(err, "calculate on %s", cfg.Server)
	}
	return resp.GetResult(), nil
}

// ParseOperation maps a flag value to the wire enum.
func ParseOperation(name string) (calculatorv1.Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case OperationAdd:
		return calculatorv1.Operation_ADD, nil
	case OperationSubtract:
		return calculatorv1.Operation_SUBTRACT, nil
	default:
		return 0, errors.Newf("unknown operation %q", name)
	}
}
