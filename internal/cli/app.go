package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"clientbook/internal/config"
	"clientbook/internal/engine"
	"clientbook/internal/lib/sl"
	"clientbook/internal/metrics"
	"clientbook/internal/storage"
)

// app is everything a subcommand needs once flags and config are resolved.
type app struct {
	cfg     *config.Configuration
	log     *slog.Logger
	store   storage.Store
	metrics *metrics.Recorder
	engine  *engine.Engine
}

// loadConfig layers the persistent flags over the loaded configuration.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("data"); f != nil && f.Changed {
		cfg.DataFile = f.Value.String()
	}
	if f := cmd.Flags().Lookup("storage"); f != nil && f.Changed {
		cfg.StorageDriver = f.Value.String()
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := sl.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.SlogLevel())

	store, err := storage.Open(ctx, cfg.StorageDriver, cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	rec := metrics.NewRecorder()
	e, err := engine.Load(ctx, store, log, rec)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	log.Debug("address book loaded",
		slog.String("driver", cfg.StorageDriver),
		slog.String("path", cfg.DataFile),
		slog.Int("clients", e.ClientCount()))
	return &app{cfg: cfg, log: log, store: store, metrics: rec, engine: e}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Error("close storage", sl.Err(err))
	}
}
