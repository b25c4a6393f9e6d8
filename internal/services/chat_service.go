package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ds3-project/ds3-backend/internal/models"
	"github.com/ds3-project/ds3-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound         = errors.New("chat room not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrMessageRequired      = errors.New("message text is required")
	ErrParticipantsRequired = errors.New("both participants are required")
)

// ChatService handles chat room and message business logic
type ChatService struct {
	chats repository.ChatRepository
	users repository.UserRepository
}

// NewChatService creates a new ChatService
func NewChatService(chats repository.ChatRepository, users repository.UserRepository) *ChatService {
	return &ChatService{chats: chats, users: users}
}

// CreateRoomInput represents input for creating a chat room
type CreateRoomInput struct {
	Name           string
	Type           models.ChatRoomType
	ParticipantIDs []uint64
}

// ListRooms returns the rooms the user participates in, most recently
// active first. Rooms without messages sort last.
func (s *ChatService) ListRooms(userID uint64) ([]repository.RoomSummary, error) {
	rooms, err := s.chats.ListRoomsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat rooms: %w", err)
	}
	return rooms, nil
}

// CreateRoom creates a room with the given participants
func (s *ChatService) CreateRoom(input CreateRoomInput) (*models.ChatRoom, error) {
	roomType := input.Type
	if roomType == "" {
		roomType = models.RoomTypeOneToOne
	}

	room := &models.ChatRoom{
		Name: input.Name,
		Type: roomType,
	}

	if err := s.chats.CreateRoom(room, dedupeIDs(input.ParticipantIDs)); err != nil {
		return nil, fmt.Errorf("failed to create chat room: %w", err)
	}

	return room, nil
}

// GetOrCreateOneToOne returns the one-to-one room for the pair, creating it
// if it does not exist yet. The second return value reports whether a new
// room was created.
func (s *ChatService) GetOrCreateOneToOne(userAID, userBID uint64) (*models.ChatRoom, bool, error) {
	if userAID == 0 || userBID == 0 {
		return nil, false, ErrParticipantsRequired
	}

	name := "Chat with User"
	if other, err := s.users.FindByID(userBID); err == nil {
		name = "Chat with " + other.Username
	}

	room, created, err := s.chats.GetOrCreateOneToOne(userAID, userBID, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create chat room: %w", err)
	}

	return room, created, nil
}

// ListMessages returns up to limit messages of a room, oldest first
func (s *ChatService) ListMessages(roomID uint64, limit int) ([]models.Message, error) {
	if _, err := s.chats.FindRoomByID(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find chat room: %w", err)
	}

	messages, err := s.chats.ListMessages(roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// SendMessage stores a message in a room and returns it with sender details
func (s *ChatService) SendMessage(roomID, senderID uint64, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMessageRequired
	}

	if _, err := s.chats.FindRoomByID(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find chat room: %w", err)
	}

	message := &models.Message{
		RoomID:   roomID,
		SenderID: senderID,
		Message:  text,
	}

	if err := s.chats.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return s.chats.FindMessageByID(message.ID)
}

// DeleteMessage removes a message by ID
func (s *ChatService) DeleteMessage(id uint64) error {
	if err := s.chats.DeleteMessage(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
