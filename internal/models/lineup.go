package models

import "gorm.io/gorm"

// LineupStatus is the play state of a single lineup entry.
type LineupStatus string

const (
	LineupQueued    LineupStatus = "QUEUED"
	LineupPlaying   LineupStatus = "PLAYING"
	LineupCompleted LineupStatus = "COMPLETED"
)

// LineupEntry is a candidate game proposed for an event. It references either
// a storefront catalog game (by slug, resolved by the catalog service) or a
// free-text custom name. PlayOrder is advisory display order and is distinct
// from the vote-derived rank, which is recomputed on every read.
type LineupEntry struct {
	gorm.Model
	EventID     uint    `gorm:"not null;index"`
	CatalogSlug *string `gorm:"size:255"`
	CustomName  *string `gorm:"size:255"`

	Status    LineupStatus `gorm:"size:20;not null;default:'QUEUED'"`
	PlayOrder int          `gorm:"not null"`

	WinnerName *string `gorm:"size:255"`
	ChaosLevel *int

	Votes []Vote `gorm:"foreignKey:LineupEntryID"`
}

// Name returns the displayable game name for the entry.
func (e LineupEntry) Name() string {
	if e.CustomName != nil && *e.CustomName != "" {
		return *e.CustomName
	}
	if e.CatalogSlug != nil {
		return *e.CatalogSlug
	}
	return ""
}
