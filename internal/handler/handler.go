package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type Handlers struct {
	Auth       *AuthHandler
	Post       *PostHandler
	Project    *ProjectHandler
	Experience *ExperienceHandler
	Settings   *SettingsHandler
	Comment    *CommentHandler
	Resume     *ResumeHandler
	Contact    *ContactHandler
	Analytics  *AnalyticsHandler
}

func NewHandlers(services *service.Services, log zerolog.Logger) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(services.Auth),
		Post:       NewPostHandler(services.Post),
		Project:    NewProjectHandler(services.Project),
		Experience: NewExperienceHandler(services.Experience),
		Settings:   NewSettingsHandler(services.Settings),
		Comment:    NewCommentHandler(services.Comment, log),
		Resume:     NewResumeHandler(services.Resume),
		Contact:    NewContactHandler(services.Email, log),
		Analytics:  NewAnalyticsHandler(services.Analytics),
	}
}

// serviceError maps service sentinels onto HTTP errors. Anything unmatched
// falls through to the 500 handler.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrReplyDepth):
		return middleware.ValidationFailed(err.Error())
	case errors.Is(err, service.ErrNotFound):
		return middleware.NotFound(err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, service.ErrSlugTaken):
		return middleware.Conflict(err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		return middleware.Unauthorized(err.Error())
	case errors.Is(err, service.ErrWrite):
		return middleware.WriteFailed("The operation failed, please try again")
	default:
		return err
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	var params domain.PaginationParams
	if err := c.QueryParser(&params); err != nil {
		params = domain.PaginationParams{}
	}
	params.Validate()
	return params
}
