package assist

import (
	"fmt"

	"gamenight/backend/internal/models"
)

// Kind selects what the assistant should suggest.
type Kind string

const (
	KindGames  Kind = "games"
	KindSnacks Kind = "snacks"
	KindThemes Kind = "themes"
	KindInvite Kind = "invite"
)

// ValidKind reports whether k is a known suggestion kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindGames, KindSnacks, KindThemes, KindInvite:
		return true
	}
	return false
}

// Suggester produces advisory suggestions for an event. Output is never
// auto-applied; the host must explicitly add a suggested item.
type Suggester interface {
	Suggest(kind Kind, event models.Event) ([]string, error)
}

// CannedSuggester serves vibe-keyed suggestions from fixed tables. It stands
// in for the hosted text-generation service in development and tests.
type CannedSuggester struct{}

var cannedGames = map[models.EventVibe][]string{
	models.VibeChill:       {"Azul", "Ticket to Ride", "Cascadia", "Patchwork"},
	models.VibeCompetitive: {"Brass: Birmingham", "Terraforming Mars", "Scythe", "Root"},
	models.VibeChaos:       {"Exploding Kittens", "Cosmic Encounter", "Munchkin", "Fluxx"},
	models.VibeParty:       {"Codenames", "Wavelength", "Just One", "Telestrations"},
	models.VibeCozy:        {"Wingspan", "Parks", "Calico", "Everdell"},
}

var cannedSnacks = map[models.EventVibe][]string{
	models.VibeChill:       {"popcorn", "sparkling water", "pretzels"},
	models.VibeCompetitive: {"energy drinks", "trail mix", "cold brew"},
	models.VibeChaos:       {"nachos", "soda", "candy"},
	models.VibeParty:       {"pizza", "beer", "chips and dip"},
	models.VibeCozy:        {"hot cocoa", "cookies", "brownies"},
}

var cannedThemes = []string{
	"Retro arcade night",
	"Tavern evening (medieval snacks encouraged)",
	"Cozy cabin winter session",
	"Tournament bracket night",
	"Mystery box: host picks every game",
}

func (CannedSuggester) Suggest(kind Kind, event models.Event) ([]string, error) {
	vibe := event.Vibe
	if _, ok := cannedGames[vibe]; !ok {
		vibe = models.VibeChill
	}

	switch kind {
	case KindGames:
		return cannedGames[vibe], nil
	case KindSnacks:
		return cannedSnacks[vibe], nil
	case KindThemes:
		return cannedThemes, nil
	case KindInvite:
		return []string{
			fmt.Sprintf("Dust off your dice: %s is happening and it won't be the same without you.", event.Title),
			fmt.Sprintf("You in? %s. Games, snacks, questionable alliances.", event.Title),
		}, nil
	default:
		return nil, fmt.Errorf("unknown suggestion kind %q", kind)
	}
}
