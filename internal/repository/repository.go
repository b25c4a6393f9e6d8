package repository

import (
	"time"

	"github.com/ds3-project/ds3-backend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List retrieves all users ordered by username
	List() ([]models.User, error)

	// Update saves all mutable fields of a user
	Update(user *models.User) error

	// Delete removes a user by ID
	Delete(id uint64) error
}

// SkillFilter holds filtering options for listing skills
type SkillFilter struct {
	UserID *uint64
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	Create(skill *models.Skill) error
	FindByID(id uint64) (*models.Skill, error)
	List(filter SkillFilter) ([]models.Skill, error)
	Update(skill *models.Skill) error
	Delete(id uint64) error
}

// InternshipRepository defines the interface for internship data access
type InternshipRepository interface {
	Create(internship *models.Internship) error
	FindByID(id uint64) (*models.Internship, error)
	List() ([]models.Internship, error)
	Update(internship *models.Internship) error
	Delete(id uint64) error
}

// HackathonRepository defines the interface for hackathon data access
type HackathonRepository interface {
	Create(hackathon *models.Hackathon) error
	FindByID(id uint64) (*models.Hackathon, error)
	List() ([]models.Hackathon, error)
	Update(hackathon *models.Hackathon) error
	Delete(id uint64) error
}

// RoomSummary is a chat room annotated with message statistics.
type RoomSummary struct {
	ID              uint64              `json:"id"`
	Name            string              `json:"name"`
	Type            models.ChatRoomType `json:"type"`
	CreatedAt       time.Time           `json:"created_at"`
	MessageCount    int64               `json:"message_count"`
	LastMessageTime *time.Time          `json:"last_message_time"`
}

// ChatRepository defines the interface for chat room and message data access
type ChatRepository interface {
	// ListRoomsByUser lists rooms the user participates in, most recently
	// active first; rooms without messages sort last.
	ListRoomsByUser(userID uint64) ([]RoomSummary, error)

	// FindRoomByID finds a chat room by ID
	FindRoomByID(id uint64) (*models.ChatRoom, error)

	// CreateRoom creates a room and one participant row per user ID
	CreateRoom(room *models.ChatRoom, participantIDs []uint64) error

	// GetOrCreateOneToOne atomically finds or creates the one_to_one room for
	// an unordered pair of users. The boolean reports whether a room was
	// created. Concurrent calls with the same pair converge on one room.
	GetOrCreateOneToOne(userAID, userBID uint64, name string) (*models.ChatRoom, bool, error)

	// ListMessages returns the latest limit messages of a room in
	// chronological order with senders preloaded.
	ListMessages(roomID uint64, limit int) ([]models.Message, error)

	// CreateMessage creates a new message
	CreateMessage(message *models.Message) error

	// FindMessageByID finds a message by ID with its sender preloaded
	FindMessageByID(id uint64) (*models.Message, error)

	// DeleteMessage removes a message by ID
	DeleteMessage(id uint64) error
}
