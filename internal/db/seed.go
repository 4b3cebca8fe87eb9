package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"staffhub/internal/config"
	"staffhub/internal/domain/auth"
)

// Seed ensures the bootstrap admin account exists. It is idempotent and a
// no-op when no seed admin is configured.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE lower(email) = lower($1)", cfg.SeedAdminEmail).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, first_name, last_name, role)
    VALUES ($1, $2, $3, $4, $5)
  `, cfg.SeedAdminEmail, hash, cfg.SeedAdminFirstName, cfg.SeedAdminLastName, auth.RoleAdmin)
	if err != nil {
		return err
	}

	slog.Info("seeded admin account", "email", cfg.SeedAdminEmail)
	return nil
}
