package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestAnalyze_PlainJSON(t *testing.T) {
	gen := &fakeGenerator{reply: `{"score": 82, "feedback": "Good fit", "suggestions": ["Add metrics", "Mention AWS"], "improved_cv": "Better CV"}`}

	analysis := NewAnalyzerService(gen).Analyze(context.Background(), "my cv", "the job")

	require.False(t, analysis.Degraded)
	assert.NoError(t, analysis.Err)
	assert.Equal(t, 82.0, analysis.Result.Score)
	assert.Equal(t, "Good fit", analysis.Result.Feedback)
	assert.Equal(t, []string{"Add metrics", "Mention AWS"}, analysis.Result.Suggestions)
	assert.Equal(t, "Better CV", analysis.Result.ImprovedCV)

	assert.Contains(t, gen.prompt, "JOB DESCRIPTION:\nthe job")
	assert.Contains(t, gen.prompt, "CV CONTENT:\nmy cv")
}

func TestAnalyze_FencedReplies(t *testing.T) {
	cases := map[string]string{
		"json fence":    "Here you go:\n```json\n{\"score\": 70, \"feedback\": \"ok\"}\n```\nThanks",
		"bare fence":    "```\n{\"score\": 70, \"feedback\": \"ok\"}\n```",
		"padded fence":  "   ```json{\"score\": 70, \"feedback\": \"ok\"}```   ",
		"string number": `{"score": "70", "feedback": "ok"}`,
	}

	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			analysis := NewAnalyzerService(&fakeGenerator{reply: reply}).Analyze(context.Background(), "cv", "jd")

			require.False(t, analysis.Degraded, "err: %v", analysis.Err)
			assert.Equal(t, 70.0, analysis.Result.Score)
			assert.Equal(t, "ok", analysis.Result.Feedback)
		})
	}
}

func TestAnalyze_MissingFieldsDefault(t *testing.T) {
	analysis := NewAnalyzerService(&fakeGenerator{reply: `{"feedback": "only feedback"}`}).
		Analyze(context.Background(), "cv", "jd")

	require.False(t, analysis.Degraded)
	assert.Zero(t, analysis.Result.Score)
	assert.Equal(t, "only feedback", analysis.Result.Feedback)
	assert.NotNil(t, analysis.Result.Suggestions)
	assert.Empty(t, analysis.Result.Suggestions)
	assert.Empty(t, analysis.Result.ImprovedCV)
}

func TestAnalyze_SuggestionsAsString(t *testing.T) {
	analysis := NewAnalyzerService(&fakeGenerator{reply: `{"score": 10, "suggestions": "Rewrite the summary"}`}).
		Analyze(context.Background(), "cv", "jd")

	require.False(t, analysis.Degraded)
	assert.Equal(t, []string{"Rewrite the summary"}, analysis.Result.Suggestions)
}

func TestAnalyze_Degraded(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"generator error": {err: errors.New("quota exceeded")},
		"not json":        {reply: "I cannot help with that."},
		"unclosed fence":  {reply: "```json\n{\"score\": 50}"},
		"json array":      {reply: `[1, 2, 3]`},
		"truncated json":  {reply: `{"score": 50, "feedback": "cut`},
	}

	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			analysis := NewAnalyzerService(gen).Analyze(context.Background(), "original cv text", "jd")

			require.True(t, analysis.Degraded)
			require.Error(t, analysis.Err)
			assert.Zero(t, analysis.Result.Score)
			assert.Equal(t, "An error occurred during analysis: "+analysis.Err.Error(), analysis.Result.Feedback)
			assert.Equal(t, []string{"Unable to provide suggestions due to an error."}, analysis.Result.Suggestions)
			assert.Equal(t, "original cv text", analysis.Result.ImprovedCV)
		})
	}
}

func TestAnalyze_GeneratorErrorMessageIsSurfaced(t *testing.T) {
	analysis := NewAnalyzerService(&fakeGenerator{err: errors.New("quota exceeded")}).
		Analyze(context.Background(), "cv", "jd")

	assert.Equal(t, "An error occurred during analysis: quota exceeded", analysis.Result.Feedback)
}
