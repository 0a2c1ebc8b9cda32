package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Default link values seeded into bot_config so /predict never renders a
// button without a URL.
const (
	DefaultAffiliateLink = "https://example.com"
	DefaultContactLink   = "https://t.me/mixeed22"
)

const (
	keyAffiliateLink = "affiliate_link"
	keyContactLink   = "contact_link"
)

// Connect opens a Postgres connection pool using the provided connection
// string, verifies it with a ping and runs the schema migration.
func Connect(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Successfully connected and migrated Postgres.")
	return db, nil
}

// migrate creates the schema if needed and seeds the default links.
func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS subscribers (
			user_id BIGINT PRIMARY KEY,
			lng TEXT NOT NULL DEFAULT 'en',
			subscribed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bot_config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	// Seed defaults without clobbering admin-set values.
	seed := map[string]string{
		keyAffiliateLink: DefaultAffiliateLink,
		keyContactLink:   DefaultContactLink,
	}
	for key, value := range seed {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO bot_config (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
			key, value,
		); err != nil {
			return err
		}
	}
	return nil
}
