package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"alfredoptarigan/cv-matcher/internal/models"
)

const (
	degradedFeedbackPrefix = "An error occurred during analysis: "
	degradedSuggestion     = "Unable to provide suggestions due to an error."
)

var (
	jsonFence = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	bareFence = regexp.MustCompile("```\\s*([\\s\\S]*?)\\s*```")

	errUnclosedFence = errors.New("code fence in model reply is not closed")
)

// Analysis is the outcome of one match request. Result is always usable; when
// Degraded is set it holds the fallback values and Err holds the cause.
type Analysis struct {
	Result   models.AnalysisData
	Degraded bool
	Err      error
}

type AnalyzerService interface {
	Analyze(ctx context.Context, cvText, jobDescription string) Analysis
}

type analyzerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(generator TextGenerator) AnalyzerService {
	return &analyzerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

func (a *analyzerService) Analyze(ctx context.Context, cvText, jobDescription string) Analysis {
	prompt := a.promptBuilder.BuildMatchPrompt(cvText, jobDescription)
	log.Printf("🤖 Requesting CV analysis (prompt %d characters)\n", len(prompt))

	reply, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		return degraded(cvText, err)
	}

	result, err := parseAnalysisReply(reply)
	if err != nil {
		return degraded(cvText, err)
	}

	log.Printf("✅ CV analysis completed with score %.1f\n", result.Score)
	return Analysis{Result: result}
}

func degraded(cvText string, err error) Analysis {
	log.Printf("❌ CV analysis failed: %v\n", err)

	return Analysis{
		Result: models.AnalysisData{
			Score:       0,
			Feedback:    degradedFeedbackPrefix + err.Error(),
			Suggestions: []string{degradedSuggestion},
			ImprovedCV:  cvText,
		},
		Degraded: true,
		Err:      err,
	}
}

// parseAnalysisReply unwraps an optional markdown fence and reads the four
// expected fields, defaulting any that are missing.
func parseAnalysisReply(reply string) (models.AnalysisData, error) {
	content, err := stripFence(strings.TrimSpace(reply))
	if err != nil {
		return models.AnalysisData{}, err
	}

	if !gjson.Valid(content) {
		return models.AnalysisData{}, fmt.Errorf("model reply is not valid JSON")
	}

	parsed := gjson.Parse(content)
	if !parsed.IsObject() {
		return models.AnalysisData{}, fmt.Errorf("model reply is not a JSON object")
	}

	return models.AnalysisData{
		Score:       parsed.Get("score").Float(),
		Feedback:    parsed.Get("feedback").String(),
		Suggestions: readSuggestions(parsed.Get("suggestions")),
		ImprovedCV:  parsed.Get("improved_cv").String(),
	}, nil
}

func stripFence(content string) (string, error) {
	var fence *regexp.Regexp
	switch {
	case strings.Contains(content, "```json"):
		fence = jsonFence
	case strings.Contains(content, "```"):
		fence = bareFence
	default:
		return content, nil
	}

	match := fence.FindStringSubmatch(content)
	if match == nil {
		return "", errUnclosedFence
	}

	return match[1], nil
}

func readSuggestions(value gjson.Result) []string {
	suggestions := []string{}

	switch {
	case value.IsArray():
		for _, item := range value.Array() {
			suggestions = append(suggestions, item.String())
		}
	case value.Type == gjson.String:
		suggestions = append(suggestions, value.String())
	}

	return suggestions
}
