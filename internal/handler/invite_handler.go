package handler

import (
	"net/http"
	"time"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/hub"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type RespondInput struct {
	Status models.GuestStatus `json:"status" binding:"required" example:"IN"`
}

// endregion

// guestByToken resolves an invite token to its guest row. Tokens do not
// expire; an unknown token is always a plain 404 (surfaced to users as
// "invite not found or expired").
func guestByToken(c *gin.Context) (*models.Guest, bool) {
	var guest models.Guest
	if err := database.DB.Where("invite_token = ?", c.Param("token")).First(&guest).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invite not found or expired"})
		return nil, false
	}
	return &guest, true
}

// GetInvite godoc
// @Summary      View an event via invite token
// @Description  Returns the event detail read model for the guest holding the token. No account needed; the token is the capability.
// @Tags         invites
// @Produce      json
// @Param        token path string true "Invite token"
// @Success      200 {object} EventDetailResponse
// @Failure      404 {object} ErrorResponse "Invite not found"
// @Router       /invites/{token} [get]
func GetInvite(c *gin.Context) {
	guest, ok := guestByToken(c)
	if !ok {
		return
	}

	var event models.Event
	if err := database.DB.First(&event, guest.EventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, buildEventDetail(event, guest, false))
}

// RespondInvite godoc
// @Summary      RSVP via invite token
// @Description  Sets the guest's RSVP status. Possession of the token is the only authorization required.
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        token path string       true "Invite token"
// @Param        input body RespondInput true "RSVP status"
// @Success      200 {object} GuestResponse
// @Failure      400 {object} ErrorResponse "Unknown status"
// @Failure      404 {object} ErrorResponse "Invite not found"
// @Router       /invites/{token}/respond [post]
func RespondInvite(c *gin.Context) {
	guest, ok := guestByToken(c)
	if !ok {
		return
	}

	var input RespondInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidGuestStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown RSVP status"})
		return
	}

	now := time.Now()
	if err := database.DB.Model(guest).Updates(map[string]interface{}{
		"status":       input.Status,
		"responded_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record response"})
		return
	}
	guest.Status = input.Status
	guest.RespondedAt = &now

	hub.GlobalHub.Broadcast(guest.EventID, hub.Message{Type: hub.TypeRSVP, Payload: gin.H{
		"guest_id": guest.ID,
		"status":   guest.Status,
	}})

	c.JSON(http.StatusOK, newGuestResponse(*guest, false))
}
