package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"portfolio-api/internal/domain"
)

type ExperienceRepository interface {
	Create(ctx context.Context, exp *domain.Experience) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error)
	List(ctx context.Context) ([]domain.Experience, error)
	Update(ctx context.Context, exp *domain.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceRepository struct {
	db *sqlx.DB
}

func NewExperienceRepository(db *sqlx.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, exp *domain.Experience) error {
	query := `
		INSERT INTO experiences (experience_id, company, position, duration, description, technologies, logo, display_order, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		exp.ID, exp.Company, exp.Position, exp.Duration, exp.Description,
		exp.Technologies, exp.Logo, exp.Order, exp.Featured,
	).Scan(&exp.CreatedAt, &exp.UpdatedAt)
}

func (r *experienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	var exp domain.Experience
	err := r.db.GetContext(ctx, &exp, `SELECT * FROM experiences WHERE experience_id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	var exps []domain.Experience
	err := r.db.SelectContext(ctx, &exps, `SELECT * FROM experiences ORDER BY display_order ASC, created_at DESC`)
	return exps, err
}

func (r *experienceRepository) Update(ctx context.Context, exp *domain.Experience) error {
	query := `
		UPDATE experiences
		SET company = $2, position = $3, duration = $4, description = $5,
			technologies = $6, logo = $7, display_order = $8, featured = $9, updated_at = NOW()
		WHERE experience_id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		exp.ID, exp.Company, exp.Position, exp.Duration, exp.Description,
		exp.Technologies, exp.Logo, exp.Order, exp.Featured,
	).Scan(&exp.UpdatedAt)
}

func (r *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE experience_id = $1`, id)
	return err
}
