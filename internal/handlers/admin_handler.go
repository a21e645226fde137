package handlers

import (
	"log"

	"playnite/internal/middleware"
	"playnite/internal/models"
	"playnite/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the content-management and analytics panel.
type AdminHandler struct {
	userService      *services.UserService
	videoService     *services.VideoService
	analyticsService *services.AnalyticsService
	validate         *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	userService *services.UserService,
	videoService *services.VideoService,
	analyticsService *services.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		videoService:     videoService,
		analyticsService: analyticsService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the admin routes behind the admin gate.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, adminRequired fiber.Handler) {
	adminRoutes := router.Group("/admin", adminRequired)
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Post("/videos", h.HandleCreateVideo)
	adminRoutes.Get("/analytics", h.HandleAnalytics)
	adminRoutes.Post("/seed-data", h.HandleSeedData)
}

// HandleListUsers returns up to 1000 users, unfiltered.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListAll()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// HandleCreateVideo adds a video to the catalog, owned by the calling admin.
func (h *AdminHandler) HandleCreateVideo(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	var input models.VideoCreate
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing video body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationErrorResponse(c, err)
	}

	video, err := h.videoService.Create(input, identity.ID)
	if err != nil {
		log.Printf("Error creating video: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create video",
			"error":   err.Error(),
		})
	}
	return c.JSON(video)
}

// HandleAnalytics returns the dashboard totals.
func (h *AdminHandler) HandleAnalytics(c *fiber.Ctx) error {
	summary, err := h.analyticsService.Summary()
	if err != nil {
		log.Printf("Error computing analytics: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute analytics",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleSeedData inserts the fixed sample videos. Not idempotent.
func (h *AdminHandler) HandleSeedData(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	if err := h.videoService.Seed(identity.ID); err != nil {
		log.Printf("Error seeding data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not seed data",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Mock data seeded successfully"})
}
