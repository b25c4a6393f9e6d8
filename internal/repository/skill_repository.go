package repository

import (
	"github.com/ds3-project/ds3-backend/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// Create creates a new skill
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// FindByID finds a skill by ID with its owner preloaded
func (r *GormSkillRepository) FindByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Preload("User").First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List retrieves skills newest first, optionally filtered by owner
func (r *GormSkillRepository) List(filter SkillFilter) ([]models.Skill, error) {
	var skills []models.Skill

	query := r.db.Preload("User")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// Update saves all mutable fields of a skill
func (r *GormSkillRepository) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill by ID
func (r *GormSkillRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
