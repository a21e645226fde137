package handlers

import (
	"log"

	"playnite/internal/middleware"
	"playnite/internal/models"
	"playnite/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CommentHandler handles HTTP requests for video comments.
type CommentHandler struct {
	commentService *services.CommentService
	validate       *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the comment routes under the video resource.
// Reading is public; posting requires authentication.
func (h *CommentHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	videoRoutes := router.Group("/videos")
	videoRoutes.Get("/:id/comments", h.HandleListComments)
	videoRoutes.Post("/:id/comments", authRequired, h.HandleCreateComment)
}

// HandleListComments returns the newest comments for a video, capped at 100.
func (h *CommentHandler) HandleListComments(c *fiber.Ctx) error {
	videoID := c.Params("id")

	comments, err := h.commentService.ListForVideo(videoID)
	if err != nil {
		log.Printf("Error listing comments for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve comments",
			"error":   err.Error(),
		})
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(comments)
}

// HandleCreateComment posts a comment as the authenticated caller.
func (h *CommentHandler) HandleCreateComment(c *fiber.Ctx) error {
	videoID := c.Params("id")
	identity := middleware.Identity(c)

	var input models.CommentCreate
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing comment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationErrorResponse(c, err)
	}

	comment, err := h.commentService.Create(videoID, identity, input.Text)
	if err != nil {
		log.Printf("Error creating comment on video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create comment",
			"error":   err.Error(),
		})
	}
	return c.JSON(comment)
}
