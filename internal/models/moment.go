package models

import "gorm.io/gorm"

// MomentType categorizes an entry in the event's moments feed.
type MomentType string

const (
	MomentQuote     MomentType = "QUOTE"
	MomentChaos     MomentType = "CHAOS"
	MomentHighlight MomentType = "HIGHLIGHT"
)

// ValidMomentType reports whether t is a known moment type.
func ValidMomentType(t MomentType) bool {
	switch t {
	case MomentQuote, MomentChaos, MomentHighlight:
		return true
	}
	return false
}

// Moment is an append-only feed entry captured during or after an event.
// Moments are never mutated.
type Moment struct {
	gorm.Model
	EventID     uint       `gorm:"not null;index"`
	Type        MomentType `gorm:"size:20;not null"`
	Content     string     `gorm:"not null"`
	CreatedByID uint       `gorm:"not null"`

	CreatedBy Guest `gorm:"foreignKey:CreatedByID"`
}
