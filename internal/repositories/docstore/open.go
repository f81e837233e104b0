package docstore

import (
	"context"
	"log/slog"

	"github.com/SscSPs/property_backoffice/internal/platform/config"
	"github.com/SscSPs/property_backoffice/pkg/database"
)

// MigrationsSource is where schema migrations are read from, relative to the working directory.
const MigrationsSource = "file://migrations"

// Open returns the store selected by cfg.StoreDriver and a func that releases it.
// The postgres driver migrates the schema before the store is handed out.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store; data is lost on exit")
		return NewMemoryStore(), func() {}, nil
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.Migrate(cfg.DatabaseURL, MigrationsSource, logger); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return NewPgStore(pool), func() { database.ClosePgxPool(pool) }, nil
}
