package handler

import (
	"fmt"
	"net/http"
	"testing"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventAttachesHostAsConfirmedGuest(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "sam")

	w := doJSON(router, "POST", "/api/v1/events", token, gin.H{
		"title": "Friday Chaos",
		"vibe":  "CHAOS",
		"date":  "2026-09-12",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp EventResponse
	decode(t, w, &resp)
	assert.Equal(t, models.StatusPlanning, resp.Status)
	assert.Equal(t, models.VibeChaos, resp.Vibe)
	assert.Equal(t, "sam", resp.HostName)

	var hostGuest models.Guest
	require.NoError(t, database.DB.Where("event_id = ? AND role = ?", resp.ID, models.RoleHost).First(&hostGuest).Error)
	assert.Equal(t, models.GuestStatusIn, hostGuest.Status)
	assert.NotEmpty(t, hostGuest.InviteToken)
}

func TestCreateEventRequiresAuth(t *testing.T) {
	router := setupTest(t)
	w := doJSON(router, "POST", "/api/v1/events", "", gin.H{"title": "No host"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEventRejectsUnknownVibe(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "sam")

	w := doJSON(router, "POST", "/api/v1/events", token, gin.H{"title": "x", "vibe": "GRIM"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetEventStatusFollowsTransitionTable(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	statusURL := fmt.Sprintf("/api/v1/events/%d/status", event.ID)

	// Skipping straight to COMPLETED is illegal from PLANNING.
	w := doJSON(router, "POST", statusURL, token, gin.H{"status": "COMPLETED"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, "POST", statusURL, token, gin.H{"status": "IN_PROGRESS"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The legal path walks every state.
	for _, next := range []string{"LOCKED_IN", "IN_PROGRESS", "COMPLETED"} {
		w = doJSON(router, "POST", statusURL, token, gin.H{"status": next})
		require.Equal(t, http.StatusOK, w.Code, "transition to %s", next)
	}

	// COMPLETED is terminal.
	w = doJSON(router, "POST", statusURL, token, gin.H{"status": "PLANNING"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelAndUncancel(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	statusURL := fmt.Sprintf("/api/v1/events/%d/status", event.ID)

	w := doJSON(router, "POST", statusURL, token, gin.H{"status": "CANCELLED"})
	require.Equal(t, http.StatusOK, w.Code)

	// CANCELLED only re-enters PLANNING.
	w = doJSON(router, "POST", statusURL, token, gin.H{"status": "LOCKED_IN"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, "POST", statusURL, token, gin.H{"status": "PLANNING"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetEventStatusIsHostOnly(t *testing.T) {
	router := setupTest(t)
	host, _ := createUser(t, "sam")
	_, otherToken := createUser(t, "riley")
	event, _ := createEvent(t, host, "Friday Chaos")

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/status", event.ID), otherToken, gin.H{"status": "LOCKED_IN"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var unchanged models.Event
	require.NoError(t, database.DB.First(&unchanged, event.ID).Error)
	assert.Equal(t, models.StatusPlanning, unchanged.Status)
}

func TestSetEventStatusRejectsUnknownStatus(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/status", event.ID), token, gin.H{"status": "PAUSED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateHouseRulesReplacesFullText(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	url := fmt.Sprintf("/api/v1/events/%d/house-rules", event.ID)

	w := doJSON(router, "PUT", url, token, gin.H{"house_rules": "No phones at the table."})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "PUT", url, token, gin.H{"house_rules": "Winner picks the next game."})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Event
	require.NoError(t, database.DB.First(&updated, event.ID).Error)
	assert.Equal(t, "Winner picks the next game.", updated.HouseRules)
}

func TestGetEventRequiresGuestOrToken(t *testing.T) {
	router := setupTest(t)
	host, _ := createUser(t, "sam")
	_, strangerToken := createUser(t, "stranger")
	event, _ := createEvent(t, host, "Friday Chaos")

	w := doJSON(router, "GET", fmt.Sprintf("/api/v1/events/%d", event.ID), strangerToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	guest := addGuest(t, event, "dana")
	w = doJSON(router, "GET", fmt.Sprintf("/api/v1/events/%d?token=%s", event.ID, guest.InviteToken), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListEventsIncludesHostedAndInvited(t *testing.T) {
	router := setupTest(t)
	host, _ := createUser(t, "sam")
	invitee, inviteeToken := createUser(t, "riley")

	event, _ := createEvent(t, host, "Friday Chaos")
	guest := addGuest(t, event, "riley")
	require.NoError(t, database.DB.Model(&guest).Update("user_id", invitee.ID).Error)

	hosted, _ := createEvent(t, invitee, "Riley's Cozy Night")

	w := doJSON(router, "GET", "/api/v1/events", inviteeToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedEventResponse
	decode(t, w, &resp)
	require.Len(t, resp.Data, 2)

	ids := []uint{resp.Data[0].ID, resp.Data[1].ID}
	assert.Contains(t, ids, event.ID)
	assert.Contains(t, ids, hosted.ID)
}
