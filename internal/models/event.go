package models

import (
	"time"

	"gorm.io/gorm"
)

// EventVibe describes the intended mood of a game night.
type EventVibe string

const (
	VibeChill       EventVibe = "CHILL"
	VibeCompetitive EventVibe = "COMPETITIVE"
	VibeChaos       EventVibe = "CHAOS"
	VibeParty       EventVibe = "PARTY"
	VibeCozy        EventVibe = "COZY"
)

// ValidVibe reports whether v is one of the known vibes.
func ValidVibe(v EventVibe) bool {
	switch v {
	case VibeChill, VibeCompetitive, VibeChaos, VibeParty, VibeCozy:
		return true
	}
	return false
}

// Event represents a single planned game night owned by a host.
// Events are never hard-deleted; cancellation is a status.
type Event struct {
	gorm.Model
	HostID      uint   `gorm:"not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string
	Date        time.Time
	StartTime   string      `gorm:"size:10"`
	EndTime     string      `gorm:"size:10"`
	Location    string      `gorm:"size:255"`
	Vibe        EventVibe   `gorm:"size:20;not null;default:'CHILL'"`
	Theme       string      `gorm:"size:255"`
	HouseRules  string
	MaxGuests   int         `gorm:"not null;default:8"`
	Status      EventStatus `gorm:"size:20;not null;default:'PLANNING';index"`

	Host    User          `gorm:"foreignKey:HostID"`
	Guests  []Guest       `gorm:"foreignKey:EventID"`
	Lineup  []LineupEntry `gorm:"foreignKey:EventID"`
	Moments []Moment      `gorm:"foreignKey:EventID"`
}
