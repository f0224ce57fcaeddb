package models

import "time"

// JobDescriptionRequest and the other *Request types are filled from the
// leniently parsed JSON body, not decoded directly.
type JobDescriptionRequest struct {
	Title   string
	Content string
	UserID  *int64
}

type JobDescriptionResponse struct {
	Success          bool   `json:"success"`
	JobDescriptionID int64  `json:"job_description_id"`
	Title            string `json:"title"`
}

type AnalyzeRequest struct {
	CVID             int64
	JobDescriptionID int64
	UserID           *int64
}

// AnalysisData is the structured outcome of comparing one CV with one job description.
type AnalysisData struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	ImprovedCV  string   `json:"improved_cv"`
}

type AnalyzeResponse struct {
	Success  bool         `json:"success"`
	ResultID int64        `json:"result_id"`
	Analysis AnalysisData `json:"analysis"`
}

type CredentialsRequest struct {
	Email    string
	Password string
}

type UserResponse struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
}

type SendApplicationRequest struct {
	JobID       int64
	CVID        int64
	UserID      *int64
	CoverLetter string
}

type JobPosting struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type CVSummary struct {
	ID        int64     `json:"id"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
}

type JobDescriptionSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
