package handler

import (
	"net/http"
	"strings"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type MomentInput struct {
	Type    models.MomentType `json:"type" binding:"required" example:"QUOTE"`
	Content string            `json:"content" binding:"required" example:"I have never seen dice this cursed."`
}

// endregion

// momentsUnlocked is the read-time gate on the moments feed.
func momentsUnlocked(event *models.Event) bool {
	return event.Status == models.StatusInProgress || event.Status == models.StatusCompleted
}

// CreateMoment godoc
// @Summary      Capture a moment
// @Description  Appends a QUOTE/CHAOS/HIGHLIGHT entry to the event's feed. Only available once the event is IN_PROGRESS or COMPLETED. Moments are never edited or removed.
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int         true  "Event ID"
// @Param        token query string      false "Invite token for anonymous guests"
// @Param        input body  MomentInput true  "Moment"
// @Success      201 {object} MomentResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Failure      409 {object} ErrorResponse "Moments are locked until the night starts"
// @Router       /events/{id}/moments [post]
func CreateMoment(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	actor, ok := resolveGuest(c, event)
	if !ok {
		return
	}
	if !momentsUnlocked(event) {
		c.JSON(http.StatusConflict, gin.H{"error": "Moments unlock once the night starts"})
		return
	}

	var input MomentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMomentType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown moment type"})
		return
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
		return
	}

	moment := models.Moment{
		EventID:     event.ID,
		Type:        input.Type,
		Content:     content,
		CreatedByID: actor.ID,
	}
	if err := database.DB.Create(&moment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to capture moment"})
		return
	}

	database.DB.Preload("CreatedBy").Preload("CreatedBy.User").First(&moment, moment.ID)
	c.JSON(http.StatusCreated, newMomentResponse(moment))
}

// ListMoments godoc
// @Summary      List moments
// @Description  Returns the event's moments feed in creation order.
// @Tags         moments
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int    true  "Event ID"
// @Param        token query string false "Invite token for anonymous guests"
// @Success      200 {array} MomentResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Failure      409 {object} ErrorResponse "Moments are locked until the night starts"
// @Router       /events/{id}/moments [get]
func ListMoments(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := resolveGuest(c, event); !ok {
		return
	}
	if !momentsUnlocked(event) {
		c.JSON(http.StatusConflict, gin.H{"error": "Moments unlock once the night starts"})
		return
	}

	var moments []models.Moment
	database.DB.Preload("CreatedBy").Preload("CreatedBy.User").
		Where("event_id = ?", event.ID).Order("created_at ASC, id ASC").Find(&moments)

	response := make([]MomentResponse, 0, len(moments))
	for _, moment := range moments {
		response = append(response, newMomentResponse(moment))
	}
	c.JSON(http.StatusOK, response)
}
