package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"portfolio-api/internal/config"
	"portfolio-api/internal/repository"
)

type Services struct {
	Auth       AuthService
	Post       PostService
	Project    ProjectService
	Experience ExperienceService
	Settings   SettingsService
	Comment    CommentService
	Stream     *CommentStream
	Resume     ResumeService
	Email      EmailService
	Analytics  AnalyticsService
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config, log zerolog.Logger) *Services {
	stream := NewCommentStream(log)
	sessions := NewRedisSessionStore(redisClient, cfg.SessionDedupTTL)

	return &Services{
		Auth:       NewAuthService(redisClient, cfg),
		Post:       NewPostService(repos.Post, repos.Analytics, redisClient),
		Project:    NewProjectService(repos.Project),
		Experience: NewExperienceService(repos.Experience),
		Settings:   NewSettingsService(repos.Settings),
		Comment:    NewCommentService(repos.Comment, stream, redisClient, cfg, log),
		Stream:     stream,
		Resume:     NewResumeService(repos.Analytics, minioClient, cfg),
		Email:      NewEmailService(cfg),
		Analytics:  NewAnalyticsService(repos.Analytics, sessions, log),
	}
}
