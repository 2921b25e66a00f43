package main

import (
	"context"
	"fmt"

	"github.com/spec-kit/catalog-service/internal/persistence"
)

func runMigrate() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	pg, err := persistence.NewPostgres(context.Background(), cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("failed to connect postgres: %w", err)
	}
	defer pg.Close()

	return persistence.RunMigrations(pg.DB().DB, logger)
}
