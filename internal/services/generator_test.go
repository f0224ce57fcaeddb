package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-matcher/internal/config"
)

func TestNewTextGenerator(t *testing.T) {
	gen, err := NewTextGenerator(config.LLMConfig{
		Provider:          config.ProviderOpenRouter,
		OpenRouterAPIKey:  "key",
		OpenRouterModel:   "openai/gpt-4o-mini",
		OpenRouterBaseURL: "https://openrouter.ai/api/v1",
	})
	require.NoError(t, err)
	assert.IsType(t, &OpenRouterService{}, gen)

	_, err = NewTextGenerator(config.LLMConfig{Provider: "unknown"})
	assert.Error(t, err)
}
