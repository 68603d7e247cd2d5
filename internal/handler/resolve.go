package handler

import (
	"net/http"
	"strconv"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// fetchEvent loads the event addressed by the :id path param. On failure it
// writes the error response and returns ok=false.
func fetchEvent(c *gin.Context) (*models.Event, bool) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return nil, false
	}

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}
	return &event, true
}

// currentUserID returns the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// resolveGuest maps the caller to the Guest row they are authorized to act as
// for this event. Two credential paths, kept deliberately separate:
//   - an authenticated user resolves through their linked guest row (the host
//     resolves to the HOST-role row created with the event);
//   - an anonymous caller resolves through the invite token in ?token=, which
//     is itself the capability.
//
// On failure it writes 401 and returns ok=false.
func resolveGuest(c *gin.Context, event *models.Event) (*models.Guest, bool) {
	if userID, ok := currentUserID(c); ok {
		var guest models.Guest
		if event.HostID == userID {
			if err := database.DB.Where("event_id = ? AND role = ?", event.ID, models.RoleHost).First(&guest).Error; err == nil {
				return &guest, true
			}
		} else if err := database.DB.Where("event_id = ? AND user_id = ?", event.ID, userID).First(&guest).Error; err == nil {
			return &guest, true
		}
	}

	if token := c.Query("token"); token != "" {
		var guest models.Guest
		if err := database.DB.Where("event_id = ? AND invite_token = ?", event.ID, token).First(&guest).Error; err == nil {
			return &guest, true
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Not a guest of this event"})
	return nil, false
}

// requireHost verifies the authenticated caller is the event's host. On
// failure it writes 401/403 and returns ok=false.
func requireHost(c *gin.Context, event *models.Event) (uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return 0, false
	}
	if event.HostID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the host can do this"})
		return 0, false
	}
	return userID, true
}

// isHost reports whether the authenticated caller (if any) hosts the event.
func isHost(c *gin.Context, event *models.Event) bool {
	userID, ok := currentUserID(c)
	return ok && event.HostID == userID
}
