package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sakhisetu/skillbridge-backend/internal/config"
	"google.golang.org/genai"
)

type GeminiServiceInterface interface {
	Configured() bool
	GenerateText(ctx context.Context, prompt string, maxOutputTokens int, temperature float64) (string, error)
}

// GeminiService is the secondary free-form completion provider. Unlike the
// inference gateway it has no mock path: callers see the real error when the
// key is missing or the request fails.
type GeminiService struct {
	Client *genai.Client
	Model  string
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		// Key is optional; the service stays constructed but unusable.
		return &GeminiService{Model: "gemini-2.5-flash"}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{Client: client, Model: "gemini-2.5-flash"}, nil
}

func (s *GeminiService) Configured() bool {
	return s.Client != nil
}

func (s *GeminiService) GenerateText(ctx context.Context, prompt string, maxOutputTokens int, temperature float64) (string, error) {
	if s.Client == nil {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxOutputTokens),
		Temperature:     genai.Ptr(float32(temperature)),
	}

	result, err := s.Client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return result.Text(), nil
}
