package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Project struct {
	ID          uuid.UUID      `json:"id" db:"project_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Summary     string         `json:"summary" db:"summary"`
	TechStack   pq.StringArray `json:"tech_stack" db:"tech_stack"`
	Link        *string        `json:"link,omitempty" db:"link"`
	Github      *string        `json:"github,omitempty" db:"github"`
	Image       *string        `json:"image,omitempty" db:"image"`
	Featured    bool           `json:"featured" db:"featured"`
	Order       int            `json:"order" db:"display_order"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Summary     string   `json:"summary"`
	TechStack   []string `json:"tech_stack"`
	Link        *string  `json:"link"`
	Github      *string  `json:"github"`
	Image       *string  `json:"image"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}
