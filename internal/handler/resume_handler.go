package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type ResumeHandler struct {
	resumeService service.ResumeService
}

func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	statuses, err := h.resumeService.List(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(statuses)
}

func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	roleID := c.Params("roleId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.resumeService.Upload(c.Context(), roleID, file, fileHeader.Size, contentType); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"role": roleID})
}

// Download streams the stored PDF and records the download.
func (h *ResumeHandler) Download(c *fiber.Ctx) error {
	roleID := c.Params("roleId")

	obj, size, err := h.resumeService.Download(c.Context(), roleID)
	if err != nil {
		return serviceError(err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, roleID))
	return c.SendStream(obj, int(size))
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	if err := h.resumeService.Delete(c.Context(), c.Params("roleId")); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
