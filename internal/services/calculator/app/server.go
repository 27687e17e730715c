// Package server wires the calculator runtime and gRPC lifecycle.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	calculatorv1 "github.com/louisbranch/grpc-calculator/api/gen/go/calculator/v1"
	_ "github.com/louisbranch/grpc-calculator/internal/platform/grpc/brotli"
	"github.com/louisbranch/grpc-calculator/internal/platform/telemetry/metrics"
	"github.com/louisbranch/grpc-calculator/internal/platform/timeouts"
	calculatorservice "github.com/louisbranch/grpc-calculator/internal/services/calculator/api/grpc/calculator"
	"github.com/louisbranch/grpc-calculator/internal/services/calculator/api/grpc/interceptors"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	_ "google.golang.org/grpc/encoding/gzip"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// MetricsNamespace prefixes every Prometheus series the server exports.
const MetricsNamespace = "calculator"

// Options holds the collaborators a Server is built with. Zero values are
// usable: no metrics endpoint, a no-op logger, and os.Stdout.
type Options struct {
	// MetricsAddr enables a Prometheus /metrics endpoint when non-empty.
	MetricsAddr string
	Logger      *zap.Logger
	// Stdout receives the startup line.
	Stdout io.Writer
}

// Server hosts the calculator gRPC API.
type Server struct {
	listener        net.Listener
	metricsListener net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	metrics         *metrics.Metrics
	log             *zap.Logger
	stdout          io.Writer
}

// New creates a configured calculator server listening on the provided port.
func New(port uint16, opts Options) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), opts)
}

// NewWithAddr creates a configured calculator server for the provided address.
func NewWithAddr(addr string, opts Options) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", addr)
	}

	var metricsListener net.Listener
	if opts.MetricsAddr != "" {
		metricsListener, err = net.Listen("tcp", opts.MetricsAddr)
		if err != nil {
			_ = listener.Close()
			return nil, errors.Wrapf(err, "listen metrics on %s", opts.MetricsAddr)
		}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	serverMetrics := metrics.New(MetricsNamespace)
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.RecoveryInterceptor(log),
			interceptors.LoggingInterceptor(log),
			serverMetrics.UnaryServerInterceptor(),
		),
	)
	healthServer := health.NewServer()
	calculatorv1.RegisterCalculatorServer(grpcServer, calculatorservice.NewService())
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(calculatorv1.Calculator_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:        listener,
		metricsListener: metricsListener,
		grpcServer:      grpcServer,
		health:          healthServer,
		metrics:         serverMetrics,
		log:             log,
		stdout:          stdout,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
func (s *Server) MetricsAddr() string {
	if s == nil || s.metricsListener == nil {
		return ""
	}
	return s.metricsListener.Addr().String()
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	if s == nil || s.listener == nil {
		return 0
	}
	if tcpAddr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return tcpAddr.Port
	}
	return 0
}

// Run creates and serves a calculator server until context cancellation.
func Run(ctx context.Context, port uint16, opts Options) error {
	server, err := New(port, opts)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve prints the startup line and serves gRPC until context cancellation,
// then stops gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintf(s.stdout, "Starting: gRPC Listener [%d]\n", s.Port())
	s.log.Info("calculator server listening", zap.String("addr", s.Addr()))

	metricsErr := make(chan error, 1)
	if s.metricsListener != nil {
		go func() {
			metricsErr <- s.metrics.ServeListener(ctx, s.metricsListener)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	return s.await(ctx, serveErr, metricsErr)
}

// await blocks until ctx is done or a listener fails. Cancellation and a
// metrics server that stopped cleanly both end in a graceful stop.
func (s *Server) await(ctx context.Context, serveErr, metricsErr <-chan error) error {
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return serveResult(err)
	case err := <-metricsErr:
		if err != nil {
			s.grpcServer.Stop()
			<-serveErr
			return err
		}
		// ServeListener returns nil only once ctx is done.
		<-ctx.Done()
	}

	s.log.Info("calculator server shutting down")
	s.gracefulStop(timeouts.Shutdown)
	return serveResult(<-serveErr)
}

// gracefulStop drains in-flight calls, forcing a stop after timeout.
func (s *Server) gracefulStop(timeout time.Duration) {
	if s.health != nil {
		s.health.Shutdown()
	}
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeout):
		s.log.Warn("graceful stop timed out, forcing stop", zap.Duration("timeout", timeout))
		s.grpcServer.Stop()
	}
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return errors.Wrap(err, "serve gRPC")
}

// Close releases calculator server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.metricsListener != nil {
		_ = s.metricsListener.Close()
	}
}
