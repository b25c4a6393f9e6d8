package models

import "time"

type Internship struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Role      string    `gorm:"type:varchar(255);not null" json:"role"`
	Company   string    `gorm:"type:varchar(255);not null" json:"company"`
	Duration  string    `gorm:"type:varchar(100)" json:"duration"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
