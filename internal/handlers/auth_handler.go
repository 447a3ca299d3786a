package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/repositories"
	"github.com/devfolio/devfolio/internal/services"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
	frontendURL string
}

func NewAuthHandler(
	authService services.AuthService,
	userRepo repositories.UserRepository,
	frontendURL string,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userRepo:    userRepo,
		frontendURL: frontendURL,
	}
}

// HandleGoogleLogin redirects to the Google consent screen. The state value is
// pinned in a short-lived cookie and checked on the way back.
func (h *AuthHandler) HandleGoogleLogin(c *fiber.Ctx) error {
	state := uuid.NewString()

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(h.authService.LoginURL(state), fiber.StatusTemporaryRedirect)
}

// HandleGoogleCallback completes the code exchange and hands the frontend a
// signed bearer token via redirect.
func (h *AuthHandler) HandleGoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "OAuth state mismatch",
			Code:  "unauthorized",
		})
	}
	c.ClearCookie(oauthStateCookie)

	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Missing authorization code",
			Code:  "invalid_input",
		})
	}

	token, err := h.authService.HandleCallback(c.UserContext(), code)
	if err != nil {
		return respondError(c, err)
	}

	return c.Redirect(fmt.Sprintf("%s/auth/callback?token=%s", h.frontendURL, token), fiber.StatusTemporaryRedirect)
}

// HandleMe returns the authenticated user's profile, resume included.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	userID, ok := AuthenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Not logged in",
			Code:  "unauthorized",
		})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error: "User not found",
				Code:  "unauthorized",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(models.MeResponse{
		Success: true,
		User:    user,
	})
}
