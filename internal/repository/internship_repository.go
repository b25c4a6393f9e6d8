package repository

import (
	"github.com/ds3-project/ds3-backend/internal/models"
	"gorm.io/gorm"
)

// GormInternshipRepository is a GORM implementation of InternshipRepository
type GormInternshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &GormInternshipRepository{db: db}
}

// Create creates a new internship
func (r *GormInternshipRepository) Create(internship *models.Internship) error {
	return r.db.Create(internship).Error
}

// FindByID finds an internship by ID with its owner preloaded
func (r *GormInternshipRepository) FindByID(id uint64) (*models.Internship, error) {
	var internship models.Internship
	if err := r.db.Preload("User").First(&internship, id).Error; err != nil {
		return nil, err
	}
	return &internship, nil
}

// List retrieves all internships newest first
func (r *GormInternshipRepository) List() ([]models.Internship, error) {
	var internships []models.Internship
	if err := r.db.Preload("User").Order("created_at DESC, id DESC").Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}

// Update saves all mutable fields of an internship
func (r *GormInternshipRepository) Update(internship *models.Internship) error {
	return r.db.Save(internship).Error
}

// Delete removes an internship by ID
func (r *GormInternshipRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Internship{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
