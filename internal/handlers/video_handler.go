package handlers

import (
	"errors"
	"log"

	"playnite/internal/models"
	"playnite/internal/repositories"
	"playnite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler handles HTTP requests for the public video catalog.
type VideoHandler struct {
	videoService *services.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videoService *services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// RegisterRoutes registers the catalog routes. Listing and playback reads
// are public; liking requires authentication.
func (h *VideoHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/categories", h.HandleGetCategories)

	videoRoutes := router.Group("/videos")
	videoRoutes.Get("/", h.HandleListVideos)
	videoRoutes.Get("/:id", h.HandleGetVideo)
	videoRoutes.Post("/:id/like", authRequired, h.HandleLikeVideo)
}

// HandleListVideos lists active videos with optional category and search
// filters.
func (h *VideoHandler) HandleListVideos(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")
	limit := c.QueryInt("limit", 0)
	skip := c.QueryInt("skip", 0)

	videos, err := h.videoService.List(category, search, skip, limit)
	if err != nil {
		log.Printf("Error listing videos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve videos",
			"error":   err.Error(),
		})
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return c.JSON(videos)
}

// HandleGetVideo returns a single active video; every successful read counts
// as a view.
func (h *VideoHandler) HandleGetVideo(c *fiber.Ctx) error {
	videoID := c.Params("id")

	video, err := h.videoService.Get(videoID)
	if err != nil {
		log.Printf("Error getting video %s: %v", videoID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Video not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve video",
			"error":   err.Error(),
		})
	}
	return c.JSON(video)
}

// HandleLikeVideo increments the like counter.
func (h *VideoHandler) HandleLikeVideo(c *fiber.Ctx) error {
	videoID := c.Params("id")

	if err := h.videoService.Like(videoID); err != nil {
		log.Printf("Error liking video %s: %v", videoID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Video not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not like video",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Video liked successfully"})
}

// HandleGetCategories returns the fixed genre list.
func (h *VideoHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(h.videoService.Categories())
}
