package dto

import (
	"time"

	"github.com/ds3-project/ds3-backend/internal/models"
)

// InternshipDTO is an internship enriched with the owner's identity.
type InternshipDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Duration    string    `json:"duration"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
}

// ToInternshipDTO converts an Internship model to InternshipDTO
func ToInternshipDTO(internship models.Internship) InternshipDTO {
	dto := InternshipDTO{
		ID:        internship.ID,
		UserID:    internship.UserID,
		Role:      internship.Role,
		Company:   internship.Company,
		Duration:  internship.Duration,
		Note:      internship.Note,
		CreatedAt: internship.CreatedAt,
	}

	if internship.User.ID != 0 {
		dto.Username = internship.User.Username
		dto.DisplayName = internship.User.DisplayName
	}

	return dto
}

// ToInternshipDTOs converts a slice of Internship models
func ToInternshipDTOs(internships []models.Internship) []InternshipDTO {
	dtos := make([]InternshipDTO, len(internships))
	for i, in := range internships {
		dtos[i] = ToInternshipDTO(in)
	}
	return dtos
}
