package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projectService.List(c.Context(), c.QueryBool("featured", false))
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	project, err := h.projectService.GetByID(c.Context(), projectID)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(project)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var input domain.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	project, err := h.projectService.Create(c.Context(), input)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var input domain.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	project, err := h.projectService.Update(c.Context(), projectID, input)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	if err := h.projectService.Delete(c.Context(), projectID); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
