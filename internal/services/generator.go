package services

import (
	"context"
	"fmt"

	"alfredoptarigan/cv-matcher/internal/config"
)

// TextGenerator sends a single prompt to a language model and returns its reply.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator builds the generator selected by LLM_PROVIDER.
func NewTextGenerator(cfg config.LLMConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderOpenRouter:
		return NewOpenRouterService(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
