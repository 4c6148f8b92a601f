// Package cli wires configuration, logging and the catalog stack behind the
// dexview command line.
package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dexview/backend/config"
	"github.com/dexview/backend/internal/infrastructure/metrics"
	"github.com/dexview/backend/internal/infrastructure/pokeapi"
	"github.com/dexview/backend/internal/logging"
	"github.com/dexview/backend/internal/usecase"
)

// globalFlags are the persistent flags shared by every subcommand
type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates the root command with the serve and browse subcommands
func NewRootCmd(version string) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "dexview",
		Short:         "Browse the Pokémon catalog",
		Long:          "dexview: filter the Pokémon catalog by name and view details, in the browser or the terminal",
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a config file (default: ./config.yaml, ./config/config.yaml, /etc/dexview/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(flags, version), newBrowseCmd(flags))

	return cmd
}

const rootCmdExample = `  # Serve the web catalog on the configured port
  dexview serve

  # Serve with a custom config file and debug logging
  dexview serve --config ./dexview.yaml --log-level debug

  # Browse in the terminal, starting with a filter
  dexview browse --query saur`

// loadConfig reads the config file named by --config, or the default
// locations, and applies flag overrides
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadFile(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		if _, err := zerolog.ParseLevel(flags.logLevel); err != nil {
			return nil, fmt.Errorf("invalid --log-level %q: %w", flags.logLevel, err)
		}
		cfg.Logging.Level = flags.logLevel
	}
	return cfg, nil
}

// app is the per-invocation stack built from config
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	closer  io.Closer
	catalog *usecase.CatalogService
}

func (a *app) Close() error {
	return a.closer.Close()
}

// newApp builds logger and catalog service. Logs go to logOut, which may
// be nil to log only to the configured file. recorder may be nil.
func newApp(flags *globalFlags, logOut io.Writer, recorder *metrics.Recorder) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Logging, logOut)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		closer:  closer,
		catalog: newCatalogService(cfg, logger, recorder),
	}, nil
}

func newCatalogService(cfg *config.Config, logger zerolog.Logger, recorder *metrics.Recorder) *usecase.CatalogService {
	opts := []pokeapi.ClientOption{
		pokeapi.WithTimeout(cfg.PokeAPI.Timeout),
		pokeapi.WithRateLimit(cfg.RateLimit.Upstream, cfg.RateLimit.Burst),
		pokeapi.WithUserAgent(cfg.PokeAPI.UserAgent),
		pokeapi.WithLogger(logger),
	}

	var batches usecase.BatchObserver
	if recorder != nil {
		opts = append(opts, pokeapi.WithObserver(recorder))
		batches = recorder
	}

	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, opts...)

	return usecase.NewCatalogService(client, batches, logger, usecase.CatalogServiceConfig{
		ListLimit:         cfg.PokeAPI.ListLimit,
		EnrichConcurrency: cfg.Enrich.Concurrency,
	})
}
