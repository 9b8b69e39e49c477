package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/application/handlers"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), runServe)
		},
	}
}

func runServe(ctx context.Context, d *Deps) error {
	srv := handlers.NewServer(
		d.Log,
		d.Config.HTTP.Addr,
		d.Characters,
		d.Creatures,
		d.Items,
		d.Places,
		d.Worlds,
		d.Catalog,
		d.Client,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
