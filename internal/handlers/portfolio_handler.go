package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/services"
)

var validate = validator.New()

type PortfolioHandler struct {
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// HandleCreatePortfolio handles POST /portfolios.
func (h *PortfolioHandler) HandleCreatePortfolio(c *fiber.Ctx) error {
	userID, ok := AuthenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Not logged in",
			Code:  "unauthorized",
		})
	}

	var req models.CreatePortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
			Code:  "invalid_input",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "template must be one of: terminal, infographic, cascade, gallery, nova, kyoto",
			Code:  "invalid_input",
		})
	}

	portfolio, err := h.portfolioService.CreatePortfolio(c.UserContext(), userID, req.Template)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreatePortfolioResponse{
		Message:   "Portfolio Creation Successful",
		Portfolio: portfolio,
	})
}

// HandleListPortfolios handles GET /portfolios, scoped to the caller.
func (h *PortfolioHandler) HandleListPortfolios(c *fiber.Ctx) error {
	userID, ok := AuthenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Not logged in",
			Code:  "unauthorized",
		})
	}

	portfolios, err := h.portfolioService.ListPortfolios(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(portfolios)
}

// HandleGetPublicPortfolio handles GET /public/portfolios/:token. No auth: the
// unguessable share token is the whole credential.
func (h *PortfolioHandler) HandleGetPublicPortfolio(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Missing share token",
			Code:  "invalid_input",
		})
	}

	portfolio, err := h.portfolioService.GetPublicPortfolio(c.UserContext(), token)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(portfolio)
}
