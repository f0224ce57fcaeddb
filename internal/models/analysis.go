package models

import (
	"time"

	"gorm.io/datatypes"
)

type AnalysisResult struct {
	ID               int64                       `gorm:"primaryKey" json:"id"`
	UserID           *int64                      `gorm:"index" json:"user_id,omitempty"`
	CVID             int64                       `gorm:"column:cv_id;not null" json:"cv_id"`
	JobDescriptionID int64                       `gorm:"not null" json:"job_description_id"`
	Score            float64                     `json:"score"`
	Feedback         string                      `gorm:"type:text" json:"feedback"`
	Suggestions      datatypes.JSONSlice[string] `gorm:"type:text" json:"suggestions"`
	ImprovedCV       string                      `gorm:"column:improved_cv;type:text" json:"improved_cv"`
	CreatedAt        time.Time                   `json:"created_at"`

	// Relations
	User           *User           `gorm:"foreignKey:UserID" json:"-"`
	CV             *CV             `gorm:"foreignKey:CVID" json:"-"`
	JobDescription *JobDescription `gorm:"foreignKey:JobDescriptionID" json:"-"`
}

func (AnalysisResult) TableName() string {
	return "analysis_results"
}

// AnalysisSummary is one row of a user's analysis history.
type AnalysisSummary struct {
	ID        int64     `json:"id"`
	Score     float64   `json:"score"`
	CVName    string    `json:"cv_name"`
	JobTitle  string    `json:"job_title"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisDetail is a stored analysis joined with the CV and job description it compared.
type AnalysisDetail struct {
	ID             int64                       `json:"id"`
	Score          float64                     `json:"score"`
	Feedback       string                      `json:"feedback"`
	Suggestions    datatypes.JSONSlice[string] `json:"suggestions"`
	ImprovedCV     string                      `gorm:"column:improved_cv" json:"improved_cv"`
	CVName         string                      `json:"cv_name"`
	CVContent      string                      `gorm:"column:cv_content" json:"cv_content"`
	JobTitle       string                      `json:"job_title"`
	JobDescription string                      `json:"job_description"`
	CreatedAt      time.Time                   `json:"created_at"`
}

// ImprovedCVExport is what the export endpoint needs to build a download.
type ImprovedCVExport struct {
	ImprovedCV string `gorm:"column:improved_cv"`
	FileName   string
}
