package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Post       PostRepository
	Project    ProjectRepository
	Experience ExperienceRepository
	Settings   SettingsRepository
	Comment    CommentRepository
	Analytics  AnalyticsRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Post:       NewPostRepository(db),
		Project:    NewProjectRepository(db),
		Experience: NewExperienceRepository(db),
		Settings:   NewSettingsRepository(db),
		Comment:    NewCommentRepository(db),
		Analytics:  NewAnalyticsRepository(db),
	}
}
