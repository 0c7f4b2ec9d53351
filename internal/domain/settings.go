package domain

import "time"

// SiteSettings is a single-row record holding the public contact links.
type SiteSettings struct {
	Github    *string   `json:"github,omitempty" db:"github"`
	Linkedin  *string   `json:"linkedin,omitempty" db:"linkedin"`
	Discord   *string   `json:"discord,omitempty" db:"discord"`
	Email     *string   `json:"email,omitempty" db:"email"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type SiteSettingsInput struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Discord  *string `json:"discord"`
	Email    *string `json:"email"`
}
