package repository

import (
	"github.com/ds3-project/ds3-backend/internal/models"
	"gorm.io/gorm"
)

// GormHackathonRepository is a GORM implementation of HackathonRepository
type GormHackathonRepository struct {
	db *gorm.DB
}

// NewHackathonRepository creates a new HackathonRepository
func NewHackathonRepository(db *gorm.DB) HackathonRepository {
	return &GormHackathonRepository{db: db}
}

// Create creates a new hackathon
func (r *GormHackathonRepository) Create(hackathon *models.Hackathon) error {
	return r.db.Create(hackathon).Error
}

// FindByID finds a hackathon by ID with its owner preloaded
func (r *GormHackathonRepository) FindByID(id uint64) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	if err := r.db.Preload("User").First(&hackathon, id).Error; err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// List retrieves all hackathons newest first
func (r *GormHackathonRepository) List() ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := r.db.Preload("User").Order("created_at DESC, id DESC").Find(&hackathons).Error; err != nil {
		return nil, err
	}
	return hackathons, nil
}

// Update saves all mutable fields of a hackathon
func (r *GormHackathonRepository) Update(hackathon *models.Hackathon) error {
	return r.db.Save(hackathon).Error
}

// Delete removes a hackathon by ID
func (r *GormHackathonRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Hackathon{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
