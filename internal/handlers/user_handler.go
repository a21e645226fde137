package handlers

import (
	"errors"
	"log"

	"playnite/internal/middleware"
	"playnite/internal/repositories"
	"playnite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the caller's own profile.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the profile routes. The router is expected to
// already carry the auth middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/profile", h.HandleGetProfile)
	userRoutes.Put("/profile", h.HandleUpdateProfile)
}

// HandleGetProfile returns the caller's user record.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	user, err := h.userService.Profile(identity.ID)
	if err != nil {
		log.Printf("Error getting profile for %s: %v", identity.ID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleUpdateProfile merges the supplied fields into the caller's record.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.userService.UpdateProfile(identity.ID, patch)
	if err != nil {
		log.Printf("Error updating profile for %s: %v", identity.ID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}
