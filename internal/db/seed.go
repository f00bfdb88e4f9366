package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"evalhub/internal/auth"
	"evalhub/internal/config"
)

// Seed ensures the bootstrap admin account exists. Everything else is created
// through the API.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(strings.ToLower(cfg.SeedAdminEmail))
	if email == "" || cfg.SeedAdminPassword == "" {
		log.Info().Msg("seed admin not configured, skipping")
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
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
    INSERT INTO users (email, password_hash, role)
    VALUES ($1, $2, $3)
  `, email, hash, auth.RoleAdmin)
	if err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("seeded admin user")
	return nil
}
