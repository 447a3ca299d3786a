package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/devfolio/devfolio/internal/apperror"
)

// GeminiService is the thin transport wrapper around the upstream model. It
// does a single request per call; retry policy lives with the caller.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements GeminiService. Transport, auth, and quota failures
// all come back as ErrUpstreamUnavailable; what the model said is the caller's
// problem to interpret.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", apperror.Wrap(apperror.ErrUpstreamUnavailable, "gemini request failed", err)
	}

	if resp == nil {
		return "", apperror.New(apperror.ErrUpstreamUnavailable, "gemini returned nil response")
	}

	return resp.Text(), nil
}
