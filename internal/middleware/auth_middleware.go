package middleware

import (
	"log"
	"strings"

	"playnite/internal/models"
	"playnite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the Locals key under which the resolved caller identity is
// stored for downstream handlers.
const IdentityKey = "identity"

// AuthRequired resolves the bearer credential and stores the identity in the
// request context. Missing or malformed credentials fail with 401.
func AuthRequired(verifier services.CredentialVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, status, msg := resolveBearer(c, verifier)
		if identity == nil {
			return c.Status(status).JSON(fiber.Map{"message": msg})
		}
		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

// AdminRequired behaves like AuthRequired and additionally rejects callers
// whose role is not admin with 403. A missing credential is still 401; the
// two failures are distinct.
func AdminRequired(verifier services.CredentialVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, status, msg := resolveBearer(c, verifier)
		if identity == nil {
			return c.Status(status).JSON(fiber.Map{"message": msg})
		}
		if identity.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

// Identity returns the resolved caller identity stored by the auth
// middleware, or nil when the route is unauthenticated.
func Identity(c *fiber.Ctx) *models.Identity {
	identity, _ := c.Locals(IdentityKey).(*models.Identity)
	return identity
}

func resolveBearer(c *fiber.Ctx, verifier services.CredentialVerifier) (*models.Identity, int, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.StatusUnauthorized, "Authorization header is required"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil, fiber.StatusUnauthorized, "Authorization header format must be 'Bearer <token>'"
	}

	identity, err := verifier.Resolve(parts[1])
	if err != nil {
		log.Printf("Credential resolution failed: %v", err)
		return nil, fiber.StatusUnauthorized, "Invalid credentials"
	}
	return identity, 0, ""
}
