package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/cv-matcher/internal/models"
)

type CVRepository interface {
	Create(cv *models.CV) (int64, error)
	FindContentByID(id int64) (string, error)
	ListByUser(userID int64) ([]models.CVSummary, error)
}

type cvRepository struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) CVRepository {
	return &cvRepository{db: db}
}

// Create implements CVRepository.
func (r *cvRepository) Create(cv *models.CV) (int64, error) {
	if err := r.db.Create(cv).Error; err != nil {
		return 0, fmt.Errorf("failed to create cv: %w", err)
	}

	return cv.ID, nil
}

// FindContentByID implements CVRepository.
func (r *cvRepository) FindContentByID(id int64) (string, error) {
	var cv models.CV
	if err := r.db.Select("id", "content").Where("id = ?", id).First(&cv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to find cv: %w", err)
	}

	return cv.Content, nil
}

// ListByUser implements CVRepository.
func (r *cvRepository) ListByUser(userID int64) ([]models.CVSummary, error) {
	cvs := []models.CVSummary{}
	err := r.db.Model(&models.CV{}).
		Select("id", "file_name", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Scan(&cvs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}

	return cvs, nil
}
