package handler

import (
	"gamenight/backend/internal/assist"
	"gamenight/backend/internal/chaos"
	"gamenight/backend/internal/mail"
)

// Collaborators wired in by main. Tests swap in fakes.
var (
	// Mailer delivers invite emails. Nil means delivery is unavailable and
	// every send is reported as failed.
	Mailer mail.Sender

	// Suggester produces advisory game/snack/theme/invite suggestions.
	Suggester assist.Suggester = assist.CannedSuggester{}

	// ChaosManager hands out realtime session room codes. Nil disables the
	// chaos endpoints.
	ChaosManager *chaos.Manager
)
