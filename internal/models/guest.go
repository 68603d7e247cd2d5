package models

import (
	"time"

	"gorm.io/gorm"
)

// GuestStatus is a guest's RSVP state.
type GuestStatus string

const (
	GuestStatusPending GuestStatus = "PENDING"
	GuestStatusIn      GuestStatus = "IN"
	GuestStatusMaybe   GuestStatus = "MAYBE"
	GuestStatusOut     GuestStatus = "OUT"
)

// ValidGuestStatus reports whether s is a known RSVP state.
func ValidGuestStatus(s GuestStatus) bool {
	switch s {
	case GuestStatusPending, GuestStatusIn, GuestStatusMaybe, GuestStatusOut:
		return true
	}
	return false
}

// GuestRole distinguishes the host's implicit guest row from invitees.
type GuestRole string

const (
	RoleHost  GuestRole = "HOST"
	RoleGuest GuestRole = "GUEST"
)

// Guest is a participant attached to an Event: either an account holder
// (UserID set) or an anonymous invitee identified only by name/email.
// The invite token is the sole credential for anonymous access, so it is
// unique across the whole system. Guest rows are never deleted; the roster
// doubles as history.
type Guest struct {
	gorm.Model
	EventID    uint  `gorm:"not null;index"`
	UserID     *uint `gorm:"index"`
	GuestName  string `gorm:"size:255"`
	GuestEmail string `gorm:"size:255"`

	Status GuestStatus `gorm:"size:20;not null;default:'PENDING'"`
	Role   GuestRole   `gorm:"size:20;not null;default:'GUEST'"`

	// Bringing is the guest's free-text snack/drink signup; nil means nothing
	// signed up yet.
	Bringing *string

	InviteToken  string     `gorm:"size:64;uniqueIndex;not null"`
	InviteSentAt *time.Time
	InviteMethod *string    `gorm:"size:20"`
	RespondedAt  *time.Time

	User *User `gorm:"foreignKey:UserID"`
}

// DisplayName prefers the linked account's nickname over the free-text name.
func (g Guest) DisplayName() string {
	if g.User != nil && g.User.Nickname != "" {
		return g.User.Nickname
	}
	if g.GuestName != "" {
		return g.GuestName
	}
	return "Guest"
}
