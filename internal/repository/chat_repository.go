package repository

import (
	"errors"

	"github.com/ds3-project/ds3-backend/internal/models"
	"gorm.io/gorm"
)

// GormChatRepository is a GORM implementation of ChatRepository
type GormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &GormChatRepository{db: db}
}

// ListRoomsByUser lists rooms the user participates in with message stats
func (r *GormChatRepository) ListRoomsByUser(userID uint64) ([]RoomSummary, error) {
	var rooms []RoomSummary

	err := r.db.Model(&models.ChatRoom{}).
		Select(`chat_rooms.id, chat_rooms.name, chat_rooms.type, chat_rooms.created_at,
			(SELECT COUNT(*) FROM messages WHERE messages.room_id = chat_rooms.id) AS message_count,
			(SELECT MAX(messages.created_at) FROM messages WHERE messages.room_id = chat_rooms.id) AS last_message_time`).
		Joins("JOIN chat_participants ON chat_participants.room_id = chat_rooms.id").
		Where("chat_participants.user_id = ?", userID).
		Order(`CASE WHEN (SELECT MAX(messages.created_at) FROM messages WHERE messages.room_id = chat_rooms.id) IS NULL THEN 1 ELSE 0 END,
			last_message_time DESC`).
		Scan(&rooms).Error
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

// FindRoomByID finds a chat room by ID
func (r *GormChatRepository) FindRoomByID(id uint64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a room and its participant rows atomically
func (r *GormChatRepository) CreateRoom(room *models.ChatRoom, participantIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}

		if len(participantIDs) == 0 {
			return nil
		}

		participants := make([]models.ChatParticipant, len(participantIDs))
		for i, userID := range participantIDs {
			participants[i] = models.ChatParticipant{
				RoomID: room.ID,
				UserID: userID,
			}
		}

		return tx.Create(&participants).Error
	})
}

// GetOrCreateOneToOne atomically finds or creates a one_to_one room for the
// pair. The pair_key unique index makes concurrent calls converge: the loser
// of the insert race gets a duplicate-key error and fetches the winner's row.
func (r *GormChatRepository) GetOrCreateOneToOne(userAID, userBID uint64, name string) (*models.ChatRoom, bool, error) {
	pairKey := models.OneToOnePairKey(userAID, userBID)

	room, err := r.findOneToOneByPairKey(pairKey)
	if err == nil {
		return room, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created := &models.ChatRoom{
		Name:    name,
		Type:    models.RoomTypeOneToOne,
		PairKey: &pairKey,
	}

	txErr := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(created).Error; err != nil {
			return err
		}

		participants := []models.ChatParticipant{
			{RoomID: created.ID, UserID: userAID},
		}
		if userBID != userAID {
			participants = append(participants, models.ChatParticipant{RoomID: created.ID, UserID: userBID})
		}

		return tx.Create(&participants).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			room, err := r.findOneToOneByPairKey(pairKey)
			if err != nil {
				return nil, false, err
			}
			return room, false, nil
		}
		return nil, false, txErr
	}

	return created, true, nil
}

func (r *GormChatRepository) findOneToOneByPairKey(pairKey string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := r.db.
		Where("type = ? AND pair_key = ?", models.RoomTypeOneToOne, pairKey).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// ListMessages returns the latest limit messages in chronological order
func (r *GormChatRepository) ListMessages(roomID uint64, limit int) ([]models.Message, error) {
	var messages []models.Message

	// created_at has second granularity, so ties break on id to keep
	// "the last N messages in arrival order" exact.
	err := r.db.Preload("Sender").
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Fetched newest first; flip to oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// CreateMessage creates a new message
func (r *GormChatRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindMessageByID finds a message by ID with its sender preloaded
func (r *GormChatRepository) FindMessageByID(id uint64) (*models.Message, error) {
	var message models.Message
	if err := r.db.Preload("Sender").First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// DeleteMessage removes a message by ID
func (r *GormChatRepository) DeleteMessage(id uint64) error {
	result := r.db.Delete(&models.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
