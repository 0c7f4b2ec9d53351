package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(settings)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var input domain.SiteSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	settings, err := h.settingsService.Update(c.Context(), input)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(settings)
}
