package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hindivocab/internal/config"
	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/internal/logger"
)

// app holds what every command needs once configuration is loaded
type app struct {
	cfg   config.Config
	log   *logger.Logger
	store *database.Store
}

// bootstrap loads configuration, builds the logger and opens the store
// with its schema in place. The caller must call close.
func bootstrap(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := database.Open(ctx, cfg.DatabaseOptions(), log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	if err := store.InitSchema(ctx); err != nil {
		store.Close()
		log.Sync()
		return nil, err
	}

	return &app{cfg: cfg, log: log, store: store}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close database", "error", err)
	}
	a.log.Sync()
}
