package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/cv-matcher/internal/models"
)

type JobDescriptionRepository interface {
	Create(jd *models.JobDescription) (int64, error)
	FindContentByID(id int64) (string, error)
	ListByUser(userID int64) ([]models.JobDescriptionSummary, error)
}

type jobDescriptionRepository struct {
	db *gorm.DB
}

func NewJobDescriptionRepository(db *gorm.DB) JobDescriptionRepository {
	return &jobDescriptionRepository{db: db}
}

// Create implements JobDescriptionRepository.
func (r *jobDescriptionRepository) Create(jd *models.JobDescription) (int64, error) {
	if err := r.db.Create(jd).Error; err != nil {
		return 0, fmt.Errorf("failed to create job description: %w", err)
	}

	return jd.ID, nil
}

// FindContentByID implements JobDescriptionRepository.
func (r *jobDescriptionRepository) FindContentByID(id int64) (string, error) {
	var jd models.JobDescription
	if err := r.db.Select("id", "content").Where("id = ?", id).First(&jd).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to find job description: %w", err)
	}

	return jd.Content, nil
}

// ListByUser implements JobDescriptionRepository.
func (r *jobDescriptionRepository) ListByUser(userID int64) ([]models.JobDescriptionSummary, error) {
	jds := []models.JobDescriptionSummary{}
	err := r.db.Model(&models.JobDescription{}).
		Select("id", "title", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Scan(&jds).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	return jds, nil
}
