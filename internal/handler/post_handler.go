package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.postService.List(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) GetBySlug(c *fiber.Ctx) error {
	post, err := h.postService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	post, err := h.postService.GetByID(c.Context(), postID)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var input domain.PostInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	post, err := h.postService.Create(c.Context(), input)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	var input domain.PostInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	post, err := h.postService.Update(c.Context(), postID, input)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	if err := h.postService.Delete(c.Context(), postID); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
