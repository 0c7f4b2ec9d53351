package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"portfolio-api/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, featuredOnly bool) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (project_id, title, description, summary, tech_stack, link, github, image, featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		project.ID, project.Title, project.Description, project.Summary, project.TechStack,
		project.Link, project.Github, project.Image, project.Featured, project.Order,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project, `SELECT * FROM projects WHERE project_id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, featuredOnly bool) ([]domain.Project, error) {
	query := `SELECT * FROM projects`
	if featuredOnly {
		query += ` WHERE featured = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at DESC`

	var projects []domain.Project
	err := r.db.SelectContext(ctx, &projects, query)
	return projects, err
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $2, description = $3, summary = $4, tech_stack = $5, link = $6,
			github = $7, image = $8, featured = $9, display_order = $10, updated_at = NOW()
		WHERE project_id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		project.ID, project.Title, project.Description, project.Summary, project.TechStack,
		project.Link, project.Github, project.Image, project.Featured, project.Order,
	).Scan(&project.UpdatedAt)
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE project_id = $1`, id)
	return err
}
