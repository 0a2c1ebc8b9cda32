package database

import (
	"context"

	"predictbot/internal/database/models"
)

// SubscriberRepository defines the interface for subscriber data operations.
type SubscriberRepository interface {
	// Register inserts the user as a subscriber if absent. Registering an
	// existing subscriber is a no-op, not an error.
	Register(ctx context.Context, userID int64) error
	// SetLanguage upserts the subscriber's language preference.
	SetLanguage(ctx context.Context, userID int64, code string) error
	// GetLanguage returns the subscriber's language, or the default language
	// when the user has no row yet.
	GetLanguage(ctx context.Context, userID int64) (string, error)
	// List returns all subscriber IDs in a stable order.
	List(ctx context.Context) ([]int64, error)
}

// SettingsRepository defines the interface for the bot settings key-value store.
type SettingsRepository interface {
	// GetLinks returns the current affiliate and contact URLs.
	GetLinks(ctx context.Context) (models.Links, error)
	// SetAffiliate overwrites the affiliate link.
	SetAffiliate(ctx context.Context, url string) error
	// SetContact overwrites the contact link.
	SetContact(ctx context.Context, url string) error
}
