package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type ExperienceHandler struct {
	experienceService service.ExperienceService
}

func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	exps, err := h.experienceService.List(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(exps)
}

func (h *ExperienceHandler) Get(c *fiber.Ctx) error {
	expID, err := uuid.Parse(c.Params("experienceId"))
	if err != nil {
		return middleware.BadRequest("Invalid experience ID")
	}

	exp, err := h.experienceService.GetByID(c.Context(), expID)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(exp)
}

func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var input domain.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	exp, err := h.experienceService.Create(c.Context(), input)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	expID, err := uuid.Parse(c.Params("experienceId"))
	if err != nil {
		return middleware.BadRequest("Invalid experience ID")
	}

	var input domain.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	exp, err := h.experienceService.Update(c.Context(), expID, input)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(exp)
}

func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	expID, err := uuid.Parse(c.Params("experienceId"))
	if err != nil {
		return middleware.BadRequest("Invalid experience ID")
	}

	if err := h.experienceService.Delete(c.Context(), expID); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
