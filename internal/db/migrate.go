package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Migrate applies the pending *.sql files from migrationsDir in lexical order.
// Each file runs in its own transaction and its version (the filename without
// extension) is recorded in schema_migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	pending, err := pendingMigrations(ctx, pool, migrationsDir)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		log.Debug().Msg("schema is up to date")
		return nil
	}

	for _, version := range pending {
		if err := applyMigration(ctx, pool, migrationsDir, version); err != nil {
			return err
		}
		log.Info().Str("version", version).Msg("applied migration")
	}
	return nil
}

func pendingMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		versions = append(versions, strings.TrimSuffix(entry.Name(), ".sql"))
	}
	sort.Strings(versions)

	var pending []string
	for _, version := range versions {
		applied, err := migrationApplied(ctx, pool, version)
		if err != nil {
			return nil, err
		}
		if !applied {
			pending = append(pending, version)
		}
	}
	return pending, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, migrationsDir, version string) error {
	sqlBytes, err := os.ReadFile(filepath.Join(migrationsDir, version+".sql"))
	if err != nil {
		return err
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("migration %s failed: %w", version, err)
	}
	if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())")
	return err
}

func migrationApplied(ctx context.Context, pool *pgxpool.Pool, version string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	return exists, err
}
