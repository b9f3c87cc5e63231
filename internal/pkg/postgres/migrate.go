package postgres

import (
	"context"
	"fmt"

	// Драйвер pgx для database/sql, нужен goose.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"autohaul/internal/pkg/config"
	"autohaul/pkg/logger"
)

const migrationsDir = "migrations"

// Migrate накатывает миграции до последней версии при старте сервиса.
func Migrate(ctx context.Context, log logger.Logger, cfg *config.Database) error {
	db, err := goose.OpenDBWithDriver("pgx", newDsn(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close migration connection",
				logger.NewField("error", closeErr),
			)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("database migrations applied")
	return nil
}
