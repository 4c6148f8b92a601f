package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpDelivery "github.com/dexview/backend/internal/delivery/http"
	"github.com/dexview/backend/internal/infrastructure/metrics"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func newServeCmd(flags *globalFlags, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web catalog and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd, flags, version)
		},
	}
}

// runServe starts the HTTP server and blocks until ctx is cancelled, then
// drains in-flight requests
func runServe(ctx context.Context, cmd *cobra.Command, flags *globalFlags, version string) error {
	recorder := metrics.NewRecorder()

	a, err := newApp(flags, cmd.ErrOrStderr(), recorder)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	logger := a.logger

	handler := httpDelivery.NewHandler(a.catalog, version)
	router := httpDelivery.SetupRouter(cfg, handler, logger, recorder)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	logger.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("addr", srv.Addr).
		Str("upstream", cfg.PokeAPI.BaseURL).
		Int("list_limit", cfg.PokeAPI.ListLimit).
		Int("enrich_concurrency", cfg.Enrich.Concurrency).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("starting dexview")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
