package models

import (
	"fmt"
	"time"
)

type ChatRoomType string

const (
	RoomTypeOneToOne ChatRoomType = "one_to_one"
	RoomTypeGroup    ChatRoomType = "group"
)

type ChatRoom struct {
	ID   uint64       `gorm:"primarykey" json:"id"`
	Name string       `gorm:"type:varchar(255)" json:"name"`
	Type ChatRoomType `gorm:"type:varchar(20);not null;default:'one_to_one'" json:"type"`
	// PairKey is the canonical participant pair for one_to_one rooms and NULL
	// for group rooms. The unique index guarantees at most one room per
	// unordered pair of users.
	PairKey   *string   `gorm:"type:varchar(50);uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Participants []ChatParticipant `gorm:"foreignKey:RoomID" json:"-"`
	Messages     []Message         `gorm:"foreignKey:RoomID" json:"-"`
}

// OneToOnePairKey builds the "low:high" key identifying an unordered pair of
// participant IDs.
func OneToOnePairKey(a, b uint64) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
