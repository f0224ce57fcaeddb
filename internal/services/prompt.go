package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchPrompt embeds both texts verbatim and asks for a JSON object with
// score, feedback, suggestions and improved_cv.
func (pb *PromptBuilder) BuildMatchPrompt(cvText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert CV/resume analyzer and job application specialist. Your task is to provide detailed analysis on how well a CV matches a job description.

JOB DESCRIPTION:
%s

CV CONTENT:
%s

Please provide the following in a JSON format:
1. A match score from 0 to 100 representing how well the CV matches the job requirements.
2. Detailed feedback on the CV's strengths and weaknesses relative to the job description.
3. Specific suggestions for improvement, including:
- Skills or experiences to highlight
- Sections to add or modify
- Keywords to include
- Formatting recommendations
4. A revised version of the CV that better matches the job description.

Format your response as a valid JSON object with the following keys:
- "score": (number)
- "feedback": (string with detailed analysis)
- "suggestions": (array of specific improvement points)
- "improved_cv": (string with the revised CV text)`,
		jobDescription, cvText)
}
