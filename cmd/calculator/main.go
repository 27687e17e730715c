// Package main starts the calculator gRPC service process lifecycle.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	calculatorcmd "github.com/louisbranch/grpc-calculator/internal/cmd/calculator"
	entrypoint "github.com/louisbranch/grpc-calculator/internal/platform/cmd"
	"github.com/louisbranch/grpc-calculator/internal/platform/config"
)

func main() {
	cfg, err := calculatorcmd.ParseConfig()
	if err != nil {
		config.Exit(entrypoint.ServiceCalculator, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := calculatorcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exit(entrypoint.ServiceCalculator, err)
	}
}
