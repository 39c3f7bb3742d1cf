package database

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser creates a bootstrap admin from ADMIN_USERNAME/ADMIN_PASSWORD.
// This is an explicit alternative to relying on the first public registration
// claiming admin rights. Skipped when ADMIN_PASSWORD is unset.
func SeedAdminUser(ctx context.Context, pool *pgxpool.Pool) error {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminPassword == "" {
		return nil
	}
	if adminUsername == "" {
		adminUsername = "admin"
	}

	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE username = $1", adminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = pool.Exec(ctx,
		"INSERT INTO users (username, password_hash, is_admin) VALUES ($1, $2, TRUE)",
		adminUsername, string(hashedPassword),
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
