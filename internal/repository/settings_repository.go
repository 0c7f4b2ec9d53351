package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"portfolio-api/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Upsert(ctx context.Context, settings *domain.SiteSettings) error
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// The site_settings table holds a single row keyed by a fixed id.
func (r *settingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	query := `SELECT github, linkedin, discord, email, updated_at FROM site_settings WHERE settings_id = 1`
	err := r.db.GetContext(ctx, &settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.SiteSettings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *domain.SiteSettings) error {
	query := `
		INSERT INTO site_settings (settings_id, github, linkedin, discord, email, updated_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (settings_id) DO UPDATE
		SET github = $1, linkedin = $2, discord = $3, email = $4, updated_at = NOW()
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		settings.Github, settings.Linkedin, settings.Discord, settings.Email,
	).Scan(&settings.UpdatedAt)
}
