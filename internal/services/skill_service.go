package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ds3-project/ds3-backend/internal/constants"
	"github.com/ds3-project/ds3-backend/internal/models"
	"github.com/ds3-project/ds3-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillNameRequired  = errors.New("skill name is required")
	ErrProgressOutOfRange = errors.New("progress must be between 0 and 100")
)

// SkillService handles skill business logic
type SkillService struct {
	skills repository.SkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skills repository.SkillRepository) *SkillService {
	return &SkillService{skills: skills}
}

// CreateSkillInput represents input for creating a skill
type CreateSkillInput struct {
	UserID   uint64
	Name     string
	Note     string
	Progress int
}

// UpdateSkillInput holds the full replacement set of mutable skill fields
type UpdateSkillInput struct {
	Name     string
	Note     string
	Progress int
}

// ListSkills returns skills newest first, optionally filtered by owner
func (s *SkillService) ListSkills(userID *uint64) ([]models.Skill, error) {
	skills, err := s.skills.List(repository.SkillFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// GetSkill returns a skill by ID
func (s *SkillService) GetSkill(id uint64) (*models.Skill, error) {
	skill, err := s.skills.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}
	return skill, nil
}

// CreateSkill creates a skill and returns the stored record
func (s *SkillService) CreateSkill(input CreateSkillInput) (*models.Skill, error) {
	if err := validateSkillFields(input.Name, input.Progress); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		UserID:   input.UserID,
		Name:     strings.TrimSpace(input.Name),
		Note:     input.Note,
		Progress: input.Progress,
	}

	if err := s.skills.Create(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return s.skills.FindByID(skill.ID)
}

// UpdateSkill replaces all mutable fields of a skill
func (s *SkillService) UpdateSkill(id uint64, input UpdateSkillInput) (*models.Skill, error) {
	if err := validateSkillFields(input.Name, input.Progress); err != nil {
		return nil, err
	}

	skill, err := s.skills.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	skill.Name = strings.TrimSpace(input.Name)
	skill.Note = input.Note
	skill.Progress = input.Progress

	if err := s.skills.Update(skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return s.skills.FindByID(id)
}

// DeleteSkill removes a skill by ID
func (s *SkillService) DeleteSkill(id uint64) error {
	if err := s.skills.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

func validateSkillFields(name string, progress int) error {
	if strings.TrimSpace(name) == "" {
		return ErrSkillNameRequired
	}
	if progress < constants.MinProgress || progress > constants.MaxProgress {
		return ErrProgressOutOfRange
	}
	return nil
}
