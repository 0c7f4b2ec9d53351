package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type ContactHandler struct {
	emailService service.EmailService
	log          zerolog.Logger
}

func NewContactHandler(emailService service.EmailService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{emailService: emailService, log: log}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var msg domain.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return middleware.ValidationFailed("Name, email and message are required")
	}

	if err := h.emailService.SendContactEmail(c.Context(), msg); err != nil {
		h.log.Error().Err(err).Msg("failed to send contact email")
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Message sent"})
}
