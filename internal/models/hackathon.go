package models

import "time"

type Hackathon struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Organizer   string    `gorm:"type:varchar(255)" json:"organizer"`
	Dates       string    `gorm:"type:varchar(100)" json:"dates"`
	Link        string    `gorm:"type:varchar(512)" json:"link"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
