package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/hub"
	"gamenight/backend/internal/invite"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type EventInput struct {
	Title       string           `json:"title" binding:"required" example:"Friday Chaos"`
	Description string           `json:"description"`
	Date        string           `json:"date" example:"2026-09-12"`
	StartTime   string           `json:"start_time" example:"19:00"`
	EndTime     string           `json:"end_time" example:"23:00"`
	Location    string           `json:"location" example:"Sam's place"`
	Vibe        models.EventVibe `json:"vibe" example:"CHAOS"`
	Theme       string           `json:"theme"`
	MaxGuests   int              `json:"max_guests" example:"8"`
}

type EventResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        string             `json:"date,omitempty"`
	StartTime   string             `json:"start_time,omitempty"`
	EndTime     string             `json:"end_time,omitempty"`
	Location    string             `json:"location,omitempty"`
	Vibe        models.EventVibe   `json:"vibe"`
	Theme       string             `json:"theme,omitempty"`
	HouseRules  string             `json:"house_rules,omitempty"`
	MaxGuests   int                `json:"max_guests"`
	Status      models.EventStatus `json:"status"`
	HostID      uint               `json:"host_id"`
	HostName    string             `json:"host_name"`
}

func newEventResponse(event models.Event) EventResponse {
	resp := EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Location:    event.Location,
		Vibe:        event.Vibe,
		Theme:       event.Theme,
		HouseRules:  event.HouseRules,
		MaxGuests:   event.MaxGuests,
		Status:      event.Status,
		HostID:      event.HostID,
		HostName:    event.Host.Nickname,
	}
	if !event.Date.IsZero() {
		resp.Date = event.Date.Format("2006-01-02")
	}
	return resp
}

type StatusInput struct {
	Status models.EventStatus `json:"status" binding:"required" example:"LOCKED_IN"`
}

type HouseRulesInput struct {
	HouseRules string `json:"house_rules"`
}

// PaginatedEventResponse defines the structure for a paginated list of events.
type PaginatedEventResponse struct {
	Data []EventResponse `json:"data"`
	Meta PaginationMeta  `json:"meta"`
}

// endregion

// applyEventInput copies the mutable metadata fields onto the event. Returns
// a non-empty message when the input is invalid.
func applyEventInput(event *models.Event, input EventInput) string {
	if input.Vibe != "" {
		if !models.ValidVibe(input.Vibe) {
			return "Unknown vibe"
		}
		event.Vibe = input.Vibe
	}
	if input.Date != "" {
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return "Invalid date, expected YYYY-MM-DD"
		}
		event.Date = date
	}
	if input.MaxGuests < 0 {
		return "max_guests cannot be negative"
	}
	if input.MaxGuests > 0 {
		event.MaxGuests = input.MaxGuests
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Location = input.Location
	event.Theme = input.Theme
	return ""
}

// CreateEvent godoc
// @Summary      Create a game night
// @Description  Creates a new event in PLANNING, with the creator as host. The host is also attached as a confirmed guest.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body EventInput true "Event Info"
// @Success      201  {object}  EventResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /events [post]
func CreateEvent(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		HostID:    user.ID,
		Vibe:      models.VibeChill,
		MaxGuests: 8,
		Status:    models.StatusPlanning,
	}
	if msg := applyEventInput(&event, input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	// The host is an implicit confirmed guest, created in the same transaction.
	tx := database.DB.Begin()

	if err := tx.Create(&event).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	hostGuest := models.Guest{
		EventID:     event.ID,
		UserID:      &user.ID,
		GuestName:   user.Nickname,
		GuestEmail:  user.Email,
		Status:      models.GuestStatusIn,
		Role:        models.RoleHost,
		InviteToken: invite.NewToken(),
	}
	if err := tx.Create(&hostGuest).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach host as guest"})
		return
	}

	tx.Commit()

	database.DB.Preload("Host").First(&event, event.ID)
	c.JSON(http.StatusCreated, newEventResponse(event))
}

// ListEvents godoc
// @Summary      List my events
// @Description  Gets a paginated list of events the user hosts or is invited to.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} PaginatedEventResponse
// @Router       /events [get]
func ListEvents(c *gin.Context) {
	userID, _ := c.Get("userID")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	query := database.DB.Model(&models.Event{}).
		Preload("Host").
		Where("host_id = ? OR id IN (?)", userID,
			database.DB.Model(&models.Guest{}).Select("event_id").Where("user_id = ?", userID)).
		Order("date DESC, id DESC")

	paginated, err := Paginate[models.Event](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}

	response := make([]EventResponse, 0, len(paginated.Data))
	for _, event := range paginated.Data {
		response = append(response, newEventResponse(event))
	}

	c.JSON(http.StatusOK, PaginatedEventResponse{Data: response, Meta: paginated.Meta})
}

// GetEvent godoc
// @Summary      Get event detail
// @Description  Full read model: event, guests with RSVP summary, lineup with vote aggregates, snack roster and moments.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int    true  "Event ID"
// @Param        token query string false "Invite token for anonymous guests"
// @Success      200 {object} EventDetailResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id} [get]
func GetEvent(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	viewer, ok := resolveGuest(c, event)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, buildEventDetail(*event, viewer, isHost(c, event)))
}

// UpdateEvent godoc
// @Summary      Update event metadata (Host only)
// @Description  Replaces the event's title, schedule, location, vibe and theme.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int        true "Event ID"
// @Param        input body EventInput true "New Event Info"
// @Success      200 {object} EventResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Only the host can update the event"
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id} [patch]
func UpdateEvent(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := applyEventInput(event, input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := database.DB.Save(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	database.DB.Preload("Host").First(event, event.ID)
	c.JSON(http.StatusOK, newEventResponse(*event))
}

// SetEventStatus godoc
// @Summary      Change event status (Host only)
// @Description  Moves the event through its lifecycle. Illegal transitions are rejected with 409.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int         true "Event ID"
// @Param        input body StatusInput true "Target status"
// @Success      200 {object} EventResponse
// @Failure      400 {object} ErrorResponse "Unknown status"
// @Failure      403 {object} ErrorResponse "Only the host can change status"
// @Failure      404 {object} ErrorResponse "Event not found"
// @Failure      409 {object} ErrorResponse "Transition not allowed"
// @Router       /events/{id}/status [post]
func SetEventStatus(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	next, err := event.Status.Transition(input.Status)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot move from " + string(event.Status) + " to " + string(input.Status)})
		return
	}

	if err := database.DB.Model(event).Update("status", next).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	event.Status = next

	hub.GlobalHub.Broadcast(event.ID, hub.Message{Type: hub.TypeStatus, Payload: gin.H{"status": next}})

	database.DB.Preload("Host").First(event, event.ID)
	c.JSON(http.StatusOK, newEventResponse(*event))
}

// UpdateHouseRules godoc
// @Summary      Replace house rules (Host only)
// @Description  Replaces the full house-rules text. No merge semantics.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int             true "Event ID"
// @Param        input body HouseRulesInput true "House rules text"
// @Success      200 {object} map[string]string "{"house_rules": "..."}"
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/house-rules [put]
func UpdateHouseRules(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}

	var input HouseRulesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(event).Update("house_rules", input.HouseRules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update house rules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"house_rules": input.HouseRules})
}
