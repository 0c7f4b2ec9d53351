package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"portfolio-api/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (post_id, title, slug, excerpt, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING published_at, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
	).Scan(&post.PublishedAt, &post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	err := r.db.GetContext(ctx, &post, `SELECT * FROM posts WHERE post_id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.GetContext(ctx, &post, `SELECT * FROM posts WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.db.SelectContext(ctx, &posts, `SELECT * FROM posts ORDER BY published_at DESC`)
	return posts, err
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $2, slug = $3, excerpt = $4, content = $5, updated_at = NOW()
		WHERE post_id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
	).Scan(&post.UpdatedAt)
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, id)
	return err
}

func (r *postRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND post_id <> $2)`
	err := r.db.GetContext(ctx, &exists, query, slug, excludeID)
	return exists, err
}
