package dto

import (
	"time"

	"github.com/ds3-project/ds3-backend/internal/models"
)

// HackathonDTO is a hackathon enriched with the owner's identity.
type HackathonDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Name        string    `json:"name"`
	Organizer   string    `json:"organizer"`
	Dates       string    `json:"dates"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
}

// ToHackathonDTO converts a Hackathon model to HackathonDTO
func ToHackathonDTO(hackathon models.Hackathon) HackathonDTO {
	dto := HackathonDTO{
		ID:          hackathon.ID,
		UserID:      hackathon.UserID,
		Name:        hackathon.Name,
		Organizer:   hackathon.Organizer,
		Dates:       hackathon.Dates,
		Link:        hackathon.Link,
		Description: hackathon.Description,
		CreatedAt:   hackathon.CreatedAt,
	}

	if hackathon.User.ID != 0 {
		dto.Username = hackathon.User.Username
		dto.DisplayName = hackathon.User.DisplayName
	}

	return dto
}

// ToHackathonDTOs converts a slice of Hackathon models
func ToHackathonDTOs(hackathons []models.Hackathon) []HackathonDTO {
	dtos := make([]HackathonDTO, len(hackathons))
	for i, h := range hackathons {
		dtos[i] = ToHackathonDTO(h)
	}
	return dtos
}
