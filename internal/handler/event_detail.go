package handler

import (
	"sort"
	"time"

	"gamenight/backend/internal/config"
	"gamenight/backend/internal/database"
	"gamenight/backend/internal/invite"
	"gamenight/backend/internal/models"
	"gamenight/backend/internal/snacks"
)

// region --- DTOs ---

type GuestResponse struct {
	ID       uint               `json:"id"`
	Name     string             `json:"name"`
	Status   models.GuestStatus `json:"status"`
	Role     models.GuestRole   `json:"role"`
	Bringing *string            `json:"bringing,omitempty"`

	// Host-only fields: invite bookkeeping is not exposed to other guests.
	Email        string     `json:"email,omitempty"`
	InviteURL    string     `json:"invite_url,omitempty"`
	InviteSentAt *time.Time `json:"invite_sent_at,omitempty"`
	InviteMethod *string    `json:"invite_method,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
}

func newGuestResponse(guest models.Guest, viewerIsHost bool) GuestResponse {
	resp := GuestResponse{
		ID:       guest.ID,
		Name:     guest.DisplayName(),
		Status:   guest.Status,
		Role:     guest.Role,
		Bringing: guest.Bringing,
	}
	if viewerIsHost {
		resp.Email = guest.GuestEmail
		resp.InviteURL = invite.Link(config.AppConfig.PublicBaseURL, guest.InviteToken)
		resp.InviteSentAt = guest.InviteSentAt
		resp.InviteMethod = guest.InviteMethod
		resp.RespondedAt = guest.RespondedAt
	}
	return resp
}

// GuestSummary is the roster headcount, host included.
type GuestSummary struct {
	Confirmed int `json:"confirmed"`
	Maybe     int `json:"maybe"`
	Pending   int `json:"pending"`
	Out       int `json:"out"`
}

type LineupEntryResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	CatalogSlug *string             `json:"catalog_slug,omitempty"`
	CustomName  *string             `json:"custom_name,omitempty"`
	Status      models.LineupStatus `json:"status"`
	PlayOrder   int                 `json:"play_order"`
	WinnerName  *string             `json:"winner_name,omitempty"`
	ChaosLevel  *int                `json:"chaos_level,omitempty"`

	// Derived from the vote set on every read; never persisted.
	VoteCount  int `json:"vote_count"`
	VoterCount int `json:"voter_count"`
	MyVote     int `json:"my_vote"`
}

func newLineupEntryResponse(entry models.LineupEntry, viewerGuestID uint) LineupEntryResponse {
	resp := LineupEntryResponse{
		ID:          entry.ID,
		Name:        entry.Name(),
		CatalogSlug: entry.CatalogSlug,
		CustomName:  entry.CustomName,
		Status:      entry.Status,
		PlayOrder:   entry.PlayOrder,
		WinnerName:  entry.WinnerName,
		ChaosLevel:  entry.ChaosLevel,
	}
	for _, vote := range entry.Votes {
		resp.VoteCount += vote.Value
		if vote.Value != 0 {
			resp.VoterCount++
		}
		if vote.GuestID == viewerGuestID {
			resp.MyVote = vote.Value
		}
	}
	return resp
}

type MomentResponse struct {
	ID        uint              `json:"id"`
	Type      models.MomentType `json:"type"`
	Content   string            `json:"content"`
	CreatedBy string            `json:"created_by"`
	CreatedAt time.Time         `json:"created_at"`
}

func newMomentResponse(moment models.Moment) MomentResponse {
	return MomentResponse{
		ID:        moment.ID,
		Type:      moment.Type,
		Content:   moment.Content,
		CreatedBy: moment.CreatedBy.DisplayName(),
		CreatedAt: moment.CreatedAt,
	}
}

type ViewerResponse struct {
	GuestID uint             `json:"guest_id"`
	Name    string           `json:"name"`
	Role    models.GuestRole `json:"role"`
	IsHost  bool             `json:"is_host"`
}

// EventDetailResponse is the full read model behind the event detail view.
type EventDetailResponse struct {
	Event       EventResponse         `json:"event"`
	Viewer      ViewerResponse        `json:"viewer"`
	Guests      []GuestResponse       `json:"guests"`
	Summary     GuestSummary          `json:"summary"`
	Lineup      []LineupEntryResponse `json:"lineup"`
	SnackRoster snacks.Roster         `json:"snack_roster"`

	// Moments and the chaos session are read-time gates on event status, not
	// separate state.
	Moments       []MomentResponse `json:"moments,omitempty"`
	ChaosUnlocked bool             `json:"chaos_unlocked"`
}

// endregion

// buildEventDetail assembles the detail read model. Vote aggregates, display
// ranking and the snack roster are all recomputed here on every call.
func buildEventDetail(event models.Event, viewer *models.Guest, viewerIsHost bool) EventDetailResponse {
	database.DB.Preload("Host").First(&event, event.ID)

	var guests []models.Guest
	database.DB.Preload("User").Where("event_id = ?", event.ID).Order("id ASC").Find(&guests)

	guestResponses := make([]GuestResponse, 0, len(guests))
	var summary GuestSummary
	var contributions []snacks.Contribution
	for _, guest := range guests {
		guestResponses = append(guestResponses, newGuestResponse(guest, viewerIsHost))
		switch guest.Status {
		case models.GuestStatusIn:
			summary.Confirmed++
		case models.GuestStatusMaybe:
			summary.Maybe++
		case models.GuestStatusOut:
			summary.Out++
		default:
			summary.Pending++
		}
		if guest.Bringing != nil && *guest.Bringing != "" {
			contributions = append(contributions, snacks.Contribution{
				GuestName: guest.DisplayName(),
				Item:      *guest.Bringing,
			})
		}
	}

	detail := EventDetailResponse{
		Event: newEventResponse(event),
		Viewer: ViewerResponse{
			GuestID: viewer.ID,
			Name:    viewer.DisplayName(),
			Role:    viewer.Role,
			IsHost:  viewerIsHost,
		},
		Guests:        guestResponses,
		Summary:       summary,
		Lineup:        loadLineup(event.ID, viewer.ID),
		SnackRoster:   snacks.BuildRoster(contributions),
		ChaosUnlocked: event.Status == models.StatusInProgress,
	}

	// Moments only surface once the night has started.
	if event.Status == models.StatusInProgress || event.Status == models.StatusCompleted {
		var moments []models.Moment
		database.DB.Preload("CreatedBy").Preload("CreatedBy.User").
			Where("event_id = ?", event.ID).Order("created_at ASC, id ASC").Find(&moments)
		detail.Moments = make([]MomentResponse, 0, len(moments))
		for _, moment := range moments {
			detail.Moments = append(detail.Moments, newMomentResponse(moment))
		}
	}

	return detail
}

// loadLineup fetches the lineup with votes and returns it in display order:
// vote count descending, ties keeping their relative play order.
func loadLineup(eventID, viewerGuestID uint) []LineupEntryResponse {
	var entries []models.LineupEntry
	database.DB.Preload("Votes").Where("event_id = ?", eventID).Order("play_order ASC").Find(&entries)

	responses := make([]LineupEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, newLineupEntryResponse(entry, viewerGuestID))
	}

	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].VoteCount > responses[j].VoteCount
	})
	return responses
}
