package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/services"
)

const localsUserID = "userID"

// RequireAuth validates the bearer token and stores the authenticated user id
// in request locals. Handlers pass the id into services explicitly; nothing
// below the handler layer reads ambient auth state.
func RequireAuth(tokenService services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error: "Authorization header is required",
				Code:  "unauthorized",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error: "Invalid token format",
				Code:  "unauthorized",
			})
		}

		userID, err := tokenService.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  "unauthorized",
			})
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// AuthenticatedUserID returns the user id RequireAuth stored on the request.
func AuthenticatedUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(localsUserID).(uuid.UUID)
	return userID, ok
}
