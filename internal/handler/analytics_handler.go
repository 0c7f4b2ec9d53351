package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio-api/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// TrackVisit counts a site visit, deduplicated per session.
func (h *AnalyticsHandler) TrackVisit(c *fiber.Ctx) error {
	sessionID := c.Get("X-Session-ID")
	if err := h.analyticsService.TrackVisit(c.Context(), sessionID); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TrackBlogView counts a view for a single post, deduplicated per session.
func (h *AnalyticsHandler) TrackBlogView(c *fiber.Ctx) error {
	sessionID := c.Get("X-Session-ID")
	if err := h.analyticsService.TrackBlogView(c.Context(), sessionID, c.Params("slug")); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analyticsService.Summary(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
