package database

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresSubscriberRepository stores subscribers in Postgres.
type PostgresSubscriberRepository struct {
	db          *sql.DB
	defaultLang string
}

// NewPostgresSubscriberRepository creates a subscriber repository backed by db.
// defaultLang is used for new rows and for users without a row yet.
func NewPostgresSubscriberRepository(db *sql.DB, defaultLang string) *PostgresSubscriberRepository {
	return &PostgresSubscriberRepository{db: db, defaultLang: defaultLang}
}

// Register inserts the user with the default language. Duplicate registration
// is a no-op so /start stays idempotent.
func (r *PostgresSubscriberRepository) Register(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO subscribers (user_id, lng)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO NOTHING
    `, userID, r.defaultLang)
	return err
}

// SetLanguage upserts the subscriber's language preference.
func (r *PostgresSubscriberRepository) SetLanguage(ctx context.Context, userID int64, code string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO subscribers (user_id, lng)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET lng = EXCLUDED.lng
    `, userID, code)
	return err
}

// GetLanguage returns the stored language for the user, or the default
// language when the user is not subscribed yet.
func (r *PostgresSubscriberRepository) GetLanguage(ctx context.Context, userID int64) (string, error) {
	var lng string
	err := r.db.QueryRowContext(ctx,
		`SELECT lng FROM subscribers WHERE user_id = $1`, userID,
	).Scan(&lng)
	if errors.Is(err, sql.ErrNoRows) {
		return r.defaultLang, nil
	}
	if err != nil {
		return "", err
	}
	if lng == "" {
		return r.defaultLang, nil
	}
	return lng, nil
}

// List returns all subscriber IDs ordered by user ID.
func (r *PostgresSubscriberRepository) List(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM subscribers ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
