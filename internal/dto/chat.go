package dto

import (
	"time"

	"github.com/ds3-project/ds3-backend/internal/models"
)

// MessageDTO is a message enriched with the sender's identity.
type MessageDTO struct {
	ID          uint64    `json:"id"`
	RoomID      uint64    `json:"room_id"`
	SenderID    uint64    `json:"sender_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
}

// ToMessageDTO converts a Message model to MessageDTO
func ToMessageDTO(message models.Message) MessageDTO {
	dto := MessageDTO{
		ID:        message.ID,
		RoomID:    message.RoomID,
		SenderID:  message.SenderID,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}

	// Include sender if preloaded
	if message.Sender.ID != 0 {
		dto.Username = message.Sender.Username
		dto.DisplayName = message.Sender.DisplayName
	}

	return dto
}

// ToMessageDTOs converts a slice of Message models
func ToMessageDTOs(messages []models.Message) []MessageDTO {
	dtos := make([]MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = ToMessageDTO(m)
	}
	return dtos
}
