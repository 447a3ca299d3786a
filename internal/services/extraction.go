package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/devfolio/devfolio/internal/apperror"
	"github.com/devfolio/devfolio/internal/models"
)

// ExtractionService turns resume prose into a fully shaped ResumeData. The
// model response is the least trustworthy input in the system, so nothing it
// returns reaches the caller without passing the schema gate.
type ExtractionService interface {
	Extract(ctx context.Context, resumeText string) (*models.ResumeData, error)
}

type extractionService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewExtractionService(geminiService GeminiService) ExtractionService {
	return &extractionService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Extract implements ExtractionService.
func (e *extractionService) Extract(ctx context.Context, resumeText string) (*models.ResumeData, error) {
	prompt := e.promptBuilder.BuildResumeExtractionPrompt(resumeText)

	response, err := e.geminiService.GenerateText(ctx, prompt, 0.2)
	if err != nil {
		return nil, err
	}

	raw := []byte(stripMarkdownFences(response))
	if !json.Valid(raw) {
		log.Printf("❌ Model response is not valid JSON (%d characters)", len(response))
		return nil, apperror.New(apperror.ErrMalformedResponse, "model response is not valid JSON")
	}

	if err := models.ValidateResumeJSON(raw); err != nil {
		log.Printf("❌ Model response failed schema validation: %v", err)
		return nil, apperror.Wrap(apperror.ErrSchemaValidation, err.Error(), err)
	}

	var resume models.ResumeData
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, apperror.Wrap(apperror.ErrSchemaValidation, "failed to decode validated response", err)
	}

	resume.Normalize()
	return &resume, nil
}

// stripMarkdownFences removes the code fences the model sometimes adds despite
// instructions. Anything beyond fences — prose around the object, commentary —
// is not salvaged: a response that is not plain JSON after this is malformed.
func stripMarkdownFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
