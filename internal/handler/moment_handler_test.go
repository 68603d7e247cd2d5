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

func startNight(t *testing.T, event models.Event) {
	t.Helper()
	require.NoError(t, database.DB.Model(&models.Event{}).Where("id = ?", event.ID).
		Update("status", models.StatusInProgress).Error)
}

func TestMomentsLockedUntilNightStarts(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	url := fmt.Sprintf("/api/v1/events/%d/moments", event.ID)

	w := doJSON(router, "POST", url, token, gin.H{"type": "QUOTE", "content": "cursed dice"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, "GET", url, token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateMomentOnceInProgress(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	startNight(t, event)
	url := fmt.Sprintf("/api/v1/events/%d/moments", event.ID)

	w := doJSON(router, "POST", url, token, gin.H{"type": "QUOTE", "content": "I have never seen dice this cursed."})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp MomentResponse
	decode(t, w, &resp)
	assert.Equal(t, models.MomentQuote, resp.Type)
	assert.Equal(t, "sam", resp.CreatedBy)

	w = doJSON(router, "GET", url, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var moments []MomentResponse
	decode(t, w, &moments)
	require.Len(t, moments, 1)
	assert.Equal(t, resp.ID, moments[0].ID)
}

func TestCreateMomentValidation(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	startNight(t, event)
	url := fmt.Sprintf("/api/v1/events/%d/moments", event.ID)

	w := doJSON(router, "POST", url, token, gin.H{"type": "SADNESS", "content": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "POST", url, token, gin.H{"type": "CHAOS", "content": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMomentsSurviveCompletion(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	startNight(t, event)
	url := fmt.Sprintf("/api/v1/events/%d/moments", event.ID)

	w := doJSON(router, "POST", url, token, gin.H{"type": "HIGHLIGHT", "content": "comeback win on the last round"})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, database.DB.Model(&models.Event{}).Where("id = ?", event.ID).
		Update("status", models.StatusCompleted).Error)

	w = doJSON(router, "GET", url, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var moments []MomentResponse
	decode(t, w, &moments)
	assert.Len(t, moments, 1)
}
