// Package main sends a single Calculate call to a calculator server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/grpc-calculator/internal/cmd/calculatorclient"
	entrypoint "github.com/louisbranch/grpc-calculator/internal/platform/cmd"
	"github.com/louisbranch/grpc-calculator/internal/platform/config"
)

func main() {
	cfg, err := calculatorclient.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exit(entrypoint.ServiceCalculatorClient, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := calculatorclient.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exit(entrypoint.ServiceCalculatorClient, err)
	}
}
