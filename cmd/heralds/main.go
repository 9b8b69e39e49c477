// Package main provides the entry point for the heralds API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/infrastructure/config"
)

var (
	version          = "0.1.0-dev"
	globalConfigFile string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "heralds",
		Short:   "Read API for the Heralds of Chaos encyclopedia",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalConfigFile, "config", "c", config.DefaultConfigFile, "Path to the config file")

	rootCmd.AddCommand(
		newServeCmd(),
		newStatsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
