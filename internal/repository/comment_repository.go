package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"portfolio-api/internal/domain"
)

const commentColumns = `comment_id, post_id, parent_id, author_name, author_email, author_is_admin,
	content, created_at, updated_at, deleted, deleted_by`

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	ListAll(ctx context.Context, filter domain.CommentStatusFilter, params domain.PaginationParams) ([]domain.Comment, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID, byAdminEmail string) error
	Restore(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (domain.CommentStats, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, post_id, parent_id, author_name, author_email, author_is_admin, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.PostID, comment.ParentID,
		comment.Author.Name, comment.Author.Email, comment.Author.IsAdmin,
		comment.Content,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`

	var c domain.Comment
	err := scanComment(r.db.QueryRowxContext(ctx, query, id), &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at ASC, comment_id ASC`

	rows, err := r.db.QueryxContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *commentRepository) ListAll(ctx context.Context, filter domain.CommentStatusFilter, params domain.PaginationParams) ([]domain.Comment, int64, error) {
	params.Validate()

	where := ""
	switch filter {
	case domain.CommentFilterActive:
		where = " WHERE deleted = FALSE"
	case domain.CommentFilterDeleted:
		where = " WHERE deleted = TRUE"
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM comments`+where); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + commentColumns + ` FROM comments` + where + `
		ORDER BY created_at DESC, comment_id DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryxContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	comments, err := collectComments(rows)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id uuid.UUID, byAdminEmail string) error {
	query := `
		UPDATE comments
		SET deleted = TRUE, deleted_by = $2, updated_at = NOW()
		WHERE comment_id = $1 AND deleted = FALSE`

	_, err := r.db.ExecContext(ctx, query, id, byAdminEmail)
	return err
}

func (r *commentRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE comments
		SET deleted = FALSE, deleted_by = NULL, updated_at = NOW()
		WHERE comment_id = $1 AND deleted = TRUE`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *commentRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	// Replies keep their parent_id; the thread builder surfaces them as
	// top-level once the parent row is gone.
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	return err
}

func (r *commentRepository) Stats(ctx context.Context) (domain.CommentStats, error) {
	var stats domain.CommentStats
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE deleted = FALSE) AS active,
			COUNT(*) FILTER (WHERE deleted = TRUE) AS deleted
		FROM comments`

	err := r.db.QueryRowxContext(ctx, query).Scan(&stats.Total, &stats.Active, &stats.Deleted)
	return stats, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row rowScanner, c *domain.Comment) error {
	return row.Scan(
		&c.ID, &c.PostID, &c.ParentID,
		&c.Author.Name, &c.Author.Email, &c.Author.IsAdmin,
		&c.Content, &c.CreatedAt, &c.UpdatedAt, &c.Deleted, &c.DeletedBy,
	)
}

func collectComments(rows *sqlx.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
