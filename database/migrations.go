package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	usersSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	// user_id is set to NULL on deletion so log history outlives the account
	logsSQL := `
	CREATE TABLE IF NOT EXISTS logs (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		action TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_logs_timestamp ON logs(timestamp DESC);
	`
	if _, err := pool.Exec(ctx, logsSQL); err != nil {
		return fmt.Errorf("failed to run logs migration: %w", err)
	}

	return nil
}
