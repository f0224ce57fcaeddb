package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterService talks to any OpenAI-compatible chat completions endpoint.
type OpenRouterService struct {
	client *resty.Client
	model  string
}

func NewOpenRouterService(baseURL, apiKey, model string) *OpenRouterService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &OpenRouterService{
		client: client,
		model:  model,
	}
}

func (s *OpenRouterService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		log.Printf("❌ OpenRouter API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	body := resp.String()
	if resp.IsError() {
		message := gjson.Get(body, "error.message").String()
		if message == "" {
			message = resp.Status()
		}
		return "", fmt.Errorf("openrouter request failed: %s", message)
	}

	text := gjson.Get(body, "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	log.Printf("📊 OpenRouter response received: %d characters\n", len(text))
	return text, nil
}
