package repositories

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"alfredoptarigan/cv-matcher/internal/models"
)

type AnalysisRepository interface {
	Save(result *models.AnalysisResult) int64
	FindDetailByID(id int64) (*models.AnalysisDetail, error)
	FindExportByID(id int64) (*models.ImprovedCVExport, error)
	ListHistoryByUser(userID *int64) ([]models.AnalysisSummary, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Save implements AnalysisRepository. A failed insert is logged and reported as FailedResultID.
func (r *analysisRepository) Save(result *models.AnalysisResult) int64 {
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}

	if err := r.db.Omit("User", "CV", "JobDescription").Create(result).Error; err != nil {
		log.Printf("❌ Failed to save analysis result: %v\n", err)
		return FailedResultID
	}

	return result.ID
}

// FindDetailByID implements AnalysisRepository.
func (r *analysisRepository) FindDetailByID(id int64) (*models.AnalysisDetail, error) {
	var details []models.AnalysisDetail
	err := r.db.Table("analysis_results AS ar").
		Select(`ar.id, ar.score, ar.feedback, ar.suggestions, ar.improved_cv,
			c.file_name AS cv_name, c.content AS cv_content,
			jd.title AS job_title, jd.content AS job_description, ar.created_at`).
		Joins("JOIN cvs AS c ON ar.cv_id = c.id").
		Joins("JOIN job_descriptions AS jd ON ar.job_description_id = jd.id").
		Where("ar.id = ?", id).
		Limit(1).
		Scan(&details).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analysis result: %w", err)
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}

	detail := details[0]
	if detail.Suggestions == nil {
		detail.Suggestions = []string{}
	}

	return &detail, nil
}

// FindExportByID implements AnalysisRepository.
func (r *analysisRepository) FindExportByID(id int64) (*models.ImprovedCVExport, error) {
	var rows []models.ImprovedCVExport
	err := r.db.Table("analysis_results AS ar").
		Select("ar.improved_cv, c.file_name").
		Joins("JOIN cvs AS c ON ar.cv_id = c.id").
		Where("ar.id = ?", id).
		Limit(1).
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find improved cv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return &rows[0], nil
}

// ListHistoryByUser implements AnalysisRepository. A nil userID lists anonymous analyses.
func (r *analysisRepository) ListHistoryByUser(userID *int64) ([]models.AnalysisSummary, error) {
	query := r.db.Table("analysis_results AS ar").
		Select("ar.id, ar.score, c.file_name AS cv_name, jd.title AS job_title, ar.created_at").
		Joins("JOIN cvs AS c ON ar.cv_id = c.id").
		Joins("JOIN job_descriptions AS jd ON ar.job_description_id = jd.id")

	if userID == nil {
		query = query.Where("ar.user_id IS NULL")
	} else {
		query = query.Where("ar.user_id = ?", *userID)
	}

	history := []models.AnalysisSummary{}
	if err := query.Order("ar.created_at DESC").Order("ar.id DESC").Scan(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to list analysis history: %w", err)
	}

	return history, nil
}
