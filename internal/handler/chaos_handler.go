package handler

import (
	"net/http"

	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// StartChaosSession godoc
// @Summary      Start (or rejoin) the chaos session
// @Description  Returns the realtime mini-game room code for the event. Only available while the event is IN_PROGRESS; concurrent starts converge on one room.
// @Tags         chaos
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int    true  "Event ID"
// @Param        token query string false "Invite token for anonymous guests"
// @Success      200 {object} chaos.Session
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Failure      409 {object} ErrorResponse "Event is not in progress"
// @Failure      503 {object} ErrorResponse "Chaos layer unavailable"
// @Router       /events/{id}/chaos [post]
func StartChaosSession(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := resolveGuest(c, event); !ok {
		return
	}
	if event.Status != models.StatusInProgress {
		c.JSON(http.StatusConflict, gin.H{"error": "Chaos unlocks while the event is in progress"})
		return
	}
	if ChaosManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chaos layer is not configured"})
		return
	}

	session, err := ChaosManager.Start(c.Request.Context(), event.ID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chaos layer is unavailable"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetChaosSession godoc
// @Summary      Get the live chaos session
// @Description  Returns the current room code if a session is live for this event.
// @Tags         chaos
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int    true  "Event ID"
// @Param        token query string false "Invite token for anonymous guests"
// @Success      200 {object} chaos.Session
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "No live session"
// @Failure      503 {object} ErrorResponse "Chaos layer unavailable"
// @Router       /events/{id}/chaos [get]
func GetChaosSession(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := resolveGuest(c, event); !ok {
		return
	}
	if ChaosManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chaos layer is not configured"})
		return
	}

	session, found, err := ChaosManager.Get(c.Request.Context(), event.ID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chaos layer is unavailable"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No live chaos session"})
		return
	}
	c.JSON(http.StatusOK, session)
}
