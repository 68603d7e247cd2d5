package handler

import (
	"net/http"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/models"
	"gamenight/backend/internal/snacks"

	"github.com/gin-gonic/gin"
)

// GetSnackRoster godoc
// @Summary      Get the snack roster
// @Description  Groups every guest's "bringing" signup into the snack taxonomy. Classification is recomputed on each read; a total of 0 is the explicit "nothing signed up yet" state.
// @Tags         snacks
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int    true  "Event ID"
// @Param        token query string false "Invite token for anonymous guests"
// @Success      200 {object} snacks.Roster
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/snacks [get]
func GetSnackRoster(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := resolveGuest(c, event); !ok {
		return
	}

	var guests []models.Guest
	database.DB.Preload("User").
		Where("event_id = ? AND bringing IS NOT NULL AND bringing != ''", event.ID).
		Order("id ASC").Find(&guests)

	contributions := make([]snacks.Contribution, 0, len(guests))
	for _, guest := range guests {
		contributions = append(contributions, snacks.Contribution{
			GuestName: guest.DisplayName(),
			Item:      *guest.Bringing,
		})
	}

	c.JSON(http.StatusOK, snacks.BuildRoster(contributions))
}
