package handler

import (
	"net/http"

	"gamenight/backend/internal/assist"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SuggestionResponse carries advisory suggestions. Nothing here is applied to
// the event; the host adds items explicitly.
type SuggestionResponse struct {
	Kind        assist.Kind `json:"kind"`
	Suggestions []string    `json:"suggestions"`
}

// endregion

// GetSuggestions godoc
// @Summary      Get planning suggestions
// @Description  Asks the suggestion assistant for games, snacks, themes or invite copy matching the event's vibe. Purely advisory.
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int    true "Event ID"
// @Param        kind query string true "games | snacks | themes | invite"
// @Success      200 {object} SuggestionResponse
// @Failure      400 {object} ErrorResponse "Unknown kind"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/suggestions [get]
func GetSuggestions(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := resolveGuest(c, event); !ok {
		return
	}

	kind := assist.Kind(c.Query("kind"))
	if !assist.ValidKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be one of games, snacks, themes, invite"})
		return
	}

	suggestions, err := Suggester.Suggest(kind, *event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Suggestion service unavailable"})
		return
	}

	c.JSON(http.StatusOK, SuggestionResponse{Kind: kind, Suggestions: suggestions})
}
