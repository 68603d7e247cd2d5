package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gamenight/backend/internal/config"
	"gamenight/backend/internal/database"
	"gamenight/backend/internal/hub"
	"gamenight/backend/internal/invite"
	"gamenight/backend/internal/logger"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

type AddGuestInput struct {
	Name            string `json:"name" binding:"required" example:"Dana"`
	Email           string `json:"email" binding:"omitempty,email"`
	SendEmail       bool   `json:"send_email"`
	PersonalMessage string `json:"personal_message"`
}

// AddGuestResponse reports the created guest together with the outcome of the
// (best-effort) invite delivery.
type AddGuestResponse struct {
	Guest     GuestResponse `json:"guest"`
	EmailSent bool          `json:"email_sent"`
}

type BringingInput struct {
	Item string `json:"item" binding:"required" example:"soda and chips"`
}

// endregion

// deliverInvite composes and sends the invite email for a guest, stamping the
// delivery fields only on success. Failures are logged and reported to the
// caller; they never fail the surrounding request.
func deliverInvite(event models.Event, guest *models.Guest, personalMessage string) bool {
	database.DB.Preload("Host").First(&event, event.ID)

	link := invite.Link(config.AppConfig.PublicBaseURL, guest.InviteToken)
	subject := invite.EmailSubject(event)
	body := invite.EmailBody(event, event.Host.Nickname, link, personalMessage)

	if Mailer == nil {
		logger.L.Warn("invite delivery skipped, no mail sender configured", zap.Uint("guest_id", guest.ID))
		return false
	}
	if err := Mailer.Send(guest.GuestEmail, subject, body); err != nil {
		logger.L.Warn("invite delivery failed",
			zap.Uint("event_id", event.ID),
			zap.Uint("guest_id", guest.ID),
			zap.Error(err),
		)
		return false
	}

	now := time.Now()
	method := "email"
	guest.InviteSentAt = &now
	guest.InviteMethod = &method
	database.DB.Model(guest).Updates(map[string]interface{}{"invite_sent_at": now, "invite_method": method})
	return true
}

// AddGuest godoc
// @Summary      Add a guest (Host only)
// @Description  Creates a guest with a fresh invite token. If an email is given and send_email is set, delivery is attempted; a failed send still leaves the guest created and is reported via email_sent.
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int           true "Event ID"
// @Param        input body AddGuestInput true "Guest Info"
// @Success      201 {object} AddGuestResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Only the host can add guests"
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/guests [post]
func AddGuest(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}

	var input AddGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest := models.Guest{
		EventID:     event.ID,
		GuestName:   strings.TrimSpace(input.Name),
		GuestEmail:  strings.ToLower(strings.TrimSpace(input.Email)),
		Status:      models.GuestStatusPending,
		Role:        models.RoleGuest,
		InviteToken: invite.NewToken(),
	}

	// Link an account if one is registered under the invitee's email, so the
	// guest can later act through their login as well as the token.
	if guest.GuestEmail != "" {
		var user models.User
		if err := database.DB.Where("email = ?", guest.GuestEmail).First(&user).Error; err == nil {
			guest.UserID = &user.ID
		}
	}

	if err := database.DB.Create(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add guest"})
		return
	}

	// Delivery is decoupled from creation: the guest row is committed whether
	// or not the email goes out.
	emailSent := false
	if input.SendEmail && guest.GuestEmail != "" {
		emailSent = deliverInvite(*event, &guest, input.PersonalMessage)
	}

	c.JSON(http.StatusCreated, AddGuestResponse{
		Guest:     newGuestResponse(guest, true),
		EmailSent: emailSent,
	})
}

// ResendInvite godoc
// @Summary      Resend an invite (Host only)
// @Description  Re-attempts invite delivery for a guest with an email on file. The existing token is reused, so earlier invite links stay valid.
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int true "Event ID"
// @Param        guestID path int true "Guest ID"
// @Success      200 {object} AddGuestResponse
// @Failure      400 {object} ErrorResponse "Guest has no email"
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event or guest not found"
// @Router       /events/{id}/guests/{guestID}/resend [post]
func ResendInvite(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}

	guestID, _ := strconv.Atoi(c.Param("guestID"))
	var guest models.Guest
	if err := database.DB.Where("event_id = ? AND id = ?", event.ID, guestID).First(&guest).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}
	if guest.GuestEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Guest has no email on file"})
		return
	}

	emailSent := deliverInvite(*event, &guest, "")

	c.JSON(http.StatusOK, AddGuestResponse{
		Guest:     newGuestResponse(guest, true),
		EmailSent: emailSent,
	})
}

// SetBringing godoc
// @Summary      Set what a guest is bringing
// @Description  Records the guest's snack/drink signup. Allowed for the guest themself (via token or login) or the host on any guest's behalf.
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        id      path  int           true  "Event ID"
// @Param        guestID path  int           true  "Guest ID"
// @Param        token   query string        false "Invite token for anonymous guests"
// @Param        input   body  BringingInput true  "Item"
// @Success      200 {object} GuestResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Not your signup"
// @Failure      404 {object} ErrorResponse "Event or guest not found"
// @Router       /events/{id}/guests/{guestID}/bringing [put]
func SetBringing(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	actor, ok := resolveGuest(c, event)
	if !ok {
		return
	}

	guestID, _ := strconv.Atoi(c.Param("guestID"))
	var guest models.Guest
	if err := database.DB.Where("event_id = ? AND id = ?", event.ID, guestID).First(&guest).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	if actor.ID != guest.ID && !isHost(c, event) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the guest or the host can change this signup"})
		return
	}

	var input BringingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := strings.TrimSpace(input.Item)
	if item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item cannot be empty"})
		return
	}

	if err := database.DB.Model(&guest).Update("bringing", item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update signup"})
		return
	}
	guest.Bringing = &item

	hub.GlobalHub.Broadcast(event.ID, hub.Message{Type: hub.TypeRSVP, Payload: gin.H{
		"guest_id": guest.ID,
		"bringing": item,
	}})

	c.JSON(http.StatusOK, newGuestResponse(guest, isHost(c, event)))
}
