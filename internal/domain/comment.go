package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCommentLength bounds comment content at submission time, counted in
// characters, not bytes.
const MaxCommentLength = 1000

// AdminDisplayName is the label shown on comments posted by the site owner.
// Name and email on admin comments are forced from the authenticated
// identity, never taken from the form.
const AdminDisplayName = "Admin"

type CommentAuthor struct {
	Name    string `json:"name" db:"author_name"`
	Email   string `json:"email" db:"author_email"`
	IsAdmin bool   `json:"is_admin" db:"author_is_admin"`
}

type Comment struct {
	ID        uuid.UUID     `json:"id" db:"comment_id"`
	PostID    uuid.UUID     `json:"post_id" db:"post_id"`
	ParentID  *uuid.UUID    `json:"parent_id" db:"parent_id"`
	Author    CommentAuthor `json:"author"`
	Content   string        `json:"content" db:"content"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
	Deleted   bool          `json:"deleted" db:"deleted"`
	DeletedBy *string       `json:"deleted_by" db:"deleted_by"`
}

// CommentFormData is what the visitor-facing form submits. Name and email
// are ignored when the caller is the authenticated admin.
type CommentFormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

type CreateCommentInput struct {
	ParentID *uuid.UUID `json:"parent_id"`
	CommentFormData
}

// CommentStatusFilter selects comments on the moderation dashboard.
type CommentStatusFilter string

const (
	CommentFilterAll     CommentStatusFilter = "all"
	CommentFilterActive  CommentStatusFilter = "active"
	CommentFilterDeleted CommentStatusFilter = "deleted"
)

type CommentStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Deleted int64 `json:"deleted"`
}
