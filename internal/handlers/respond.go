package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/devfolio/internal/apperror"
	"github.com/devfolio/devfolio/internal/models"
)

// respondError maps a service-level error onto the HTTP surface. Raw error
// chains stay in the logs; clients only see the kind and its message.
func respondError(c *fiber.Ctx, err error) error {
	status := apperror.ToHTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error: apperror.Message(err),
		Code:  apperror.Code(err),
	})
}
