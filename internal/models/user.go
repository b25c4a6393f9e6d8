package models

import "time"

type User struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Username    string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email       *string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	DisplayName string    `gorm:"type:varchar(255)" json:"display_name"`
	AvatarURL   string    `gorm:"type:varchar(512)" json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Skills      []Skill           `gorm:"foreignKey:UserID" json:"-"`
	Internships []Internship      `gorm:"foreignKey:UserID" json:"-"`
	Hackathons  []Hackathon       `gorm:"foreignKey:UserID" json:"-"`
	Rooms       []ChatParticipant `gorm:"foreignKey:UserID" json:"-"`
	Messages    []Message         `gorm:"foreignKey:SenderID" json:"-"`
}
