package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/services"
)

type ResumeHandler struct {
	ingestService    services.IngestService
	portfolioService services.PortfolioService
}

func NewResumeHandler(
	ingestService services.IngestService,
	portfolioService services.PortfolioService,
) *ResumeHandler {
	return &ResumeHandler{
		ingestService:    ingestService,
		portfolioService: portfolioService,
	}
}

// HandleUploadResume handles POST /resume: multipart "resume" field → full
// ingest → the stored ResumeData.
func (h *ResumeHandler) HandleUploadResume(c *fiber.Ctx) error {
	userID, ok := AuthenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Not logged in",
			Code:  "unauthorized",
		})
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No file uploaded",
			Code:  "invalid_upload",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Could not read uploaded file",
			Code:  "invalid_upload",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Could not read uploaded file",
			Code:  "invalid_upload",
		})
	}

	mimeType := fileHeader.Header.Get(fiber.HeaderContentType)

	resume, err := h.ingestService.Ingest(c.UserContext(), userID, data, mimeType, fileHeader.Size)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resume)
}

// HandleGetResumeData handles GET /resume/:userId. Only the owner may read
// through this route; share links use the public portfolio route.
func (h *ResumeHandler) HandleGetResumeData(c *fiber.Ctx) error {
	callerID, ok := AuthenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Not logged in",
			Code:  "unauthorized",
		})
	}

	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid user ID format",
			Code:  "invalid_input",
		})
	}

	resume, err := h.portfolioService.GetResumeData(c.UserContext(), callerID, targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resume)
}
