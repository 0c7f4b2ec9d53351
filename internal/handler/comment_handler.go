package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
	log            zerolog.Logger
}

func NewCommentHandler(commentService service.CommentService, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		log:            log.With().Str("component", "comment_handler").Logger(),
	}
}

// Thread returns the reconstructed comment thread for one post.
func (h *CommentHandler) Thread(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	view, err := h.commentService.Thread(c.Context(), postID)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// Submit creates a top-level comment or a reply. Authorship is taken from
// the verified token when one is present; the form's name and email are
// used only for anonymous visitors.
func (h *CommentHandler) Submit(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.commentService.Submit(c.Context(), postID, input, middleware.GetAdminEmail(c))
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// Stream pushes the post's full thread to the client over SSE: an initial
// snapshot, then a replacement view after every write. The subscription is
// released exactly once on every exit path. A failed initial read degrades
// to an empty thread plus an error event rather than closing the stream.
func (h *CommentHandler) Stream(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	initial, threadErr := h.commentService.Thread(c.Context(), postID)
	if threadErr != nil {
		h.log.Warn().Err(threadErr).Str("post_id", postID.String()).Msg("comment stream starting degraded")
		initial = domain.NewThreadView(nil)
	}

	updates, release := h.commentService.Subscribe(postID)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer release()

		if threadErr != nil {
			if writeSSE(w, "error", map[string]string{"message": "comments temporarily unavailable"}) != nil {
				return
			}
		}
		if writeSSE(w, "comments", initial) != nil {
			return
		}

		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()

		for {
			select {
			case comments, ok := <-updates:
				if !ok {
					return
				}
				if writeSSE(w, "comments", domain.NewThreadView(comments)) != nil {
					return
				}
			case <-keepalive.C:
				if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

// ListAll serves the moderation dashboard: newest first, filterable by
// active/deleted state.
func (h *CommentHandler) ListAll(c *fiber.Ctx) error {
	filter := domain.CommentStatusFilter(c.Query("filter", string(domain.CommentFilterAll)))
	switch filter {
	case domain.CommentFilterAll, domain.CommentFilterActive, domain.CommentFilterDeleted:
	default:
		return middleware.BadRequest("Invalid filter")
	}

	params := getPaginationParams(c)

	result, err := h.commentService.ListAll(c.Context(), filter, params)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.commentService.Stats(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *CommentHandler) SoftDelete(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.SoftDelete(c.Context(), middleware.GetAdminEmail(c), commentID); err != nil {
		return serviceError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CommentHandler) Restore(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.Restore(c.Context(), middleware.GetAdminEmail(c), commentID); err != nil {
		return serviceError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HardDelete permanently removes a comment. Dashboard only.
func (h *CommentHandler) HardDelete(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.HardDelete(c.Context(), middleware.GetAdminEmail(c), commentID); err != nil {
		return serviceError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func writeSSE(w *bufio.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}
