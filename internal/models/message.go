package models

import "time"

type Message struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	RoomID    uint64    `gorm:"not null;index" json:"room_id"`
	SenderID  uint64    `gorm:"not null;index" json:"sender_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Room   ChatRoom `gorm:"foreignKey:RoomID" json:"-"`
	Sender User     `gorm:"foreignKey:SenderID" json:"-"`
}
