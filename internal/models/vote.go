package models

import "time"

// Vote is a single guest's vote on a lineup entry, value in {-1, 0, +1}.
// The primary key is a composite of (LineupEntryID, GuestID) so a guest can
// never hold two live votes on the same entry, even under concurrent writes.
// Aggregates (vote count, voter count) are summed at read time, never stored.
type Vote struct {
	LineupEntryID uint `gorm:"primaryKey"`
	GuestID       uint `gorm:"primaryKey"`
	EventID       uint `gorm:"not null;index"`
	Value         int  `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	LineupEntry LineupEntry `gorm:"foreignKey:LineupEntryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Guest       Guest       `gorm:"foreignKey:GuestID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
