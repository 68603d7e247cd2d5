package models

import "gorm.io/gorm"

// ChatMessage is one entry in an event's append-only planning chat.
// Ordering key is (CreatedAt, ID) so same-timestamp messages break ties by
// insertion order. IsEdited exists for forward compatibility; no edit path
// is exposed.
type ChatMessage struct {
	gorm.Model
	EventID      uint   `gorm:"not null;index"`
	GuestID      uint   `gorm:"not null"`
	AuthorName   string `gorm:"size:255;not null"`
	AuthorAvatar string `gorm:"size:512"`
	Content      string `gorm:"not null"`
	IsEdited     bool   `gorm:"not null;default:false"`

	Guest Guest `gorm:"foreignKey:GuestID"`
}
