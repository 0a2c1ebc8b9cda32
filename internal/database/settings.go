package database

import (
	"context"
	"database/sql"

	"predictbot/internal/database/models"
)

// PostgresSettingsRepository stores the bot settings key-value pairs in Postgres.
type PostgresSettingsRepository struct {
	db *sql.DB
}

// NewPostgresSettingsRepository creates a settings repository backed by db.
func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

// GetLinks returns the current affiliate and contact URLs. Missing rows fall
// back to the seeded defaults so the returned values are never empty.
func (r *PostgresSettingsRepository) GetLinks(ctx context.Context) (models.Links, error) {
	links := models.Links{
		Affiliate: DefaultAffiliateLink,
		Contact:   DefaultContactLink,
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM bot_config WHERE key IN ($1, $2)`,
		keyAffiliateLink, keyContactLink,
	)
	if err != nil {
		return links, err
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return links, err
		}
		if value == "" {
			continue
		}
		switch key {
		case keyAffiliateLink:
			links.Affiliate = value
		case keyContactLink:
			links.Contact = value
		}
	}
	return links, rows.Err()
}

// SetAffiliate overwrites the affiliate link.
func (r *PostgresSettingsRepository) SetAffiliate(ctx context.Context, url string) error {
	return r.setValue(ctx, keyAffiliateLink, url)
}

// SetContact overwrites the contact link.
func (r *PostgresSettingsRepository) SetContact(ctx context.Context, url string) error {
	return r.setValue(ctx, keyContactLink, url)
}

func (r *PostgresSettingsRepository) setValue(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO bot_config (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `, key, value)
	return err
}
