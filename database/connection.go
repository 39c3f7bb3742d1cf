package database

import (
	"context"
	"fmt"

	"Gatehouse/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the connection pool. Individual requests acquire and release
// connections through the pool; nothing holds a connection across requests.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
