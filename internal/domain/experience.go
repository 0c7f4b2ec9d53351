package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Experience struct {
	ID           uuid.UUID      `json:"id" db:"experience_id"`
	Company      string         `json:"company" db:"company"`
	Position     string         `json:"position" db:"position"`
	Duration     string         `json:"duration" db:"duration"`
	Description  string         `json:"description" db:"description"`
	Technologies pq.StringArray `json:"technologies" db:"technologies"`
	Logo         *string        `json:"logo,omitempty" db:"logo"`
	Order        int            `json:"order" db:"display_order"`
	Featured     bool           `json:"featured" db:"featured"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

type ExperienceInput struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Logo         *string  `json:"logo"`
	Order        int      `json:"order"`
	Featured     bool     `json:"featured"`
}
