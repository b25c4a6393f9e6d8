package dto

import (
	"time"

	"github.com/ds3-project/ds3-backend/internal/models"
)

// SkillDTO is a skill enriched with the owner's identity.
type SkillDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Name        string    `json:"name"`
	Note        string    `json:"note"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
}

// ToSkillDTO converts a Skill model to SkillDTO
func ToSkillDTO(skill models.Skill) SkillDTO {
	dto := SkillDTO{
		ID:        skill.ID,
		UserID:    skill.UserID,
		Name:      skill.Name,
		Note:      skill.Note,
		Progress:  skill.Progress,
		CreatedAt: skill.CreatedAt,
	}

	// Include owner if preloaded
	if skill.User.ID != 0 {
		dto.Username = skill.User.Username
		dto.DisplayName = skill.User.DisplayName
	}

	return dto
}

// ToSkillDTOs converts a slice of Skill models
func ToSkillDTOs(skills []models.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = ToSkillDTO(s)
	}
	return dtos
}
