package models

type ChatParticipant struct {
	RoomID uint64 `gorm:"primarykey" json:"room_id"`
	UserID uint64 `gorm:"primarykey" json:"user_id"`

	// Relations
	Room ChatRoom `gorm:"foreignKey:RoomID" json:"-"`
	User User     `gorm:"foreignKey:UserID" json:"-"`
}
