package handler

import (
	"net/http"
	"strconv"
	"strings"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/hub"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

type LineupEntryInput struct {
	CatalogSlug string `json:"catalog_slug" example:"wingspan"`
	CustomName  string `json:"custom_name" example:"Dave's homebrew RPG"`
}

type VoteInput struct {
	Value *int `json:"value" binding:"required" example:"1"`
}

// VoteResponse carries the caller's resulting vote and the entry's fresh
// aggregates, recomputed from the vote set.
type VoteResponse struct {
	LineupEntryID uint `json:"lineup_entry_id"`
	MyVote        int  `json:"my_vote"`
	VoteCount     int  `json:"vote_count"`
	VoterCount    int  `json:"voter_count"`
}

type OutcomeInput struct {
	Status     models.LineupStatus `json:"status" binding:"required" example:"COMPLETED"`
	WinnerName string              `json:"winner_name"`
	ChaosLevel *int                `json:"chaos_level"`
}

// endregion

// fetchLineupEntry loads the entry addressed by :entryID within the event.
func fetchLineupEntry(c *gin.Context, event *models.Event) (*models.LineupEntry, bool) {
	entryID, _ := strconv.Atoi(c.Param("entryID"))
	var entry models.LineupEntry
	if err := database.DB.Where("event_id = ? AND id = ?", event.ID, entryID).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lineup entry not found"})
		return nil, false
	}
	return &entry, true
}

// AddLineupEntry godoc
// @Summary      Propose a game (Host only)
// @Description  Appends a candidate game to the lineup, either a catalog reference or a free-text custom name, at the next play order.
// @Tags         lineup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int              true "Event ID"
// @Param        input body LineupEntryInput true "Game ref or custom name"
// @Success      201 {object} LineupEntryResponse
// @Failure      400 {object} ErrorResponse "Neither ref nor name given"
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/lineup [post]
func AddLineupEntry(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}

	var input LineupEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := strings.TrimSpace(input.CatalogSlug)
	name := strings.TrimSpace(input.CustomName)
	if slug == "" && name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a catalog_slug or a custom_name"})
		return
	}

	var maxOrder int
	database.DB.Model(&models.LineupEntry{}).Where("event_id = ?", event.ID).
		Select("COALESCE(MAX(play_order), 0)").Scan(&maxOrder)

	entry := models.LineupEntry{
		EventID:   event.ID,
		Status:    models.LineupQueued,
		PlayOrder: maxOrder + 1,
	}
	if slug != "" {
		entry.CatalogSlug = &slug
	}
	if name != "" {
		entry.CustomName = &name
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add lineup entry"})
		return
	}

	c.JSON(http.StatusCreated, newLineupEntryResponse(entry, 0))
}

// DeleteLineupEntry godoc
// @Summary      Remove a game from the lineup (Host only)
// @Tags         lineup
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int true "Event ID"
// @Param        entryID path int true "Lineup entry ID"
// @Success      200 {object} map[string]string "{"message": "Lineup entry removed"}"
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event or entry not found"
// @Router       /events/{id}/lineup/{entryID} [delete]
func DeleteLineupEntry(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}
	entry, ok := fetchLineupEntry(c, event)
	if !ok {
		return
	}

	tx := database.DB.Begin()
	if err := tx.Where("lineup_entry_id = ?", entry.ID).Delete(&models.Vote{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove votes"})
		return
	}
	if err := tx.Delete(entry).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove lineup entry"})
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Lineup entry removed"})
}

// CastVote godoc
// @Summary      Vote on a lineup entry
// @Description  Sets the caller's vote (-1, 0 or +1) on a candidate game. Re-sending the current nonzero value clears it (second click un-votes). One live vote per guest and entry; aggregates are recomputed from the vote set.
// @Tags         lineup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int       true  "Event ID"
// @Param        entryID path  int       true  "Lineup entry ID"
// @Param        token   query string    false "Invite token for anonymous guests"
// @Param        input   body  VoteInput true  "Vote value"
// @Success      200 {object} VoteResponse
// @Failure      400 {object} ErrorResponse "Value out of range"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event or entry not found"
// @Router       /events/{id}/lineup/{entryID}/vote [post]
func CastVote(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	actor, ok := resolveGuest(c, event)
	if !ok {
		return
	}
	entry, ok := fetchLineupEntry(c, event)
	if !ok {
		return
	}

	var input VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	value := *input.Value
	if value < -1 || value > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vote value must be -1, 0 or 1"})
		return
	}

	// Toggle rule: re-sending the existing nonzero value clears the vote.
	// The composite primary key on (lineup_entry_id, guest_id) makes the
	// upsert serialize concurrent requests onto a single row.
	tx := database.DB.Begin()

	var existing models.Vote
	if err := tx.Where("lineup_entry_id = ? AND guest_id = ?", entry.ID, actor.ID).
		First(&existing).Error; err == nil {
		if value != 0 && existing.Value == value {
			value = 0
		}
	}

	vote := models.Vote{
		LineupEntryID: entry.ID,
		GuestID:       actor.ID,
		EventID:       event.ID,
		Value:         value,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lineup_entry_id"}, {Name: "guest_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&vote).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	// Recompute aggregates inside the same transaction the write committed
	// under; no maintained counters to drift.
	var votes []models.Vote
	if err := tx.Where("lineup_entry_id = ?", entry.ID).Find(&votes).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read votes"})
		return
	}
	tx.Commit()

	resp := VoteResponse{LineupEntryID: entry.ID, MyVote: value}
	for _, v := range votes {
		resp.VoteCount += v.Value
		if v.Value != 0 {
			resp.VoterCount++
		}
	}

	hub.GlobalHub.Broadcast(event.ID, hub.Message{Type: hub.TypeVote, Payload: resp})

	c.JSON(http.StatusOK, resp)
}

// RecordOutcome godoc
// @Summary      Record a game's outcome (Host only)
// @Description  Marks a lineup entry PLAYING or COMPLETED, with winner and chaos level on completion. Voting is not blocked afterwards; clients stop offering the control.
// @Tags         lineup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int          true "Event ID"
// @Param        entryID path int          true "Lineup entry ID"
// @Param        input   body OutcomeInput true "Outcome"
// @Success      200 {object} LineupEntryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event or entry not found"
// @Router       /events/{id}/lineup/{entryID}/outcome [post]
func RecordOutcome(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := requireHost(c, event); !ok {
		return
	}
	entry, ok := fetchLineupEntry(c, event)
	if !ok {
		return
	}

	var input OutcomeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != models.LineupPlaying && input.Status != models.LineupCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be PLAYING or COMPLETED"})
		return
	}
	if input.ChaosLevel != nil && (*input.ChaosLevel < 1 || *input.ChaosLevel > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chaos level must be between 1 and 5"})
		return
	}

	entry.Status = input.Status
	if winner := strings.TrimSpace(input.WinnerName); winner != "" {
		entry.WinnerName = &winner
	}
	if input.ChaosLevel != nil {
		entry.ChaosLevel = input.ChaosLevel
	}

	if err := database.DB.Save(entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record outcome"})
		return
	}

	database.DB.Preload("Votes").First(entry, entry.ID)
	c.JSON(http.StatusOK, newLineupEntryResponse(*entry, 0))
}
