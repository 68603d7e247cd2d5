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

func TestAddGuestMintsUniqueTokens(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	url := fmt.Sprintf("/api/v1/events/%d/guests", event.ID)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		w := doJSON(router, "POST", url, token, gin.H{"name": fmt.Sprintf("guest-%d", i)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var guests []models.Guest
	require.NoError(t, database.DB.Where("event_id = ? AND role = ?", event.ID, models.RoleGuest).Find(&guests).Error)
	require.Len(t, guests, 20)
	for _, g := range guests {
		assert.NotEmpty(t, g.InviteToken)
		assert.False(t, seen[g.InviteToken], "token reused")
		seen[g.InviteToken] = true
		assert.Equal(t, models.GuestStatusPending, g.Status)
	}
}

func TestAddGuestIsHostOnly(t *testing.T) {
	router := setupTest(t)
	host, _ := createUser(t, "sam")
	_, otherToken := createUser(t, "riley")
	event, _ := createEvent(t, host, "Friday Chaos")

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/guests", event.ID), otherToken, gin.H{"name": "dana"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddGuestSurvivesDeliveryFailure(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	Mailer = &fakeSender{fail: true}

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/guests", event.ID), token, gin.H{
		"name":       "dana",
		"email":      "dana@example.com",
		"send_email": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AddGuestResponse
	decode(t, w, &resp)
	assert.False(t, resp.EmailSent)

	// The guest row commits regardless of delivery; the send is never stamped.
	var guest models.Guest
	require.NoError(t, database.DB.Where("event_id = ? AND guest_name = ?", event.ID, "dana").First(&guest).Error)
	assert.Nil(t, guest.InviteSentAt)
	assert.Nil(t, guest.InviteMethod)
}

func TestAddGuestStampsDeliveryOnSuccess(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	sender := &fakeSender{}
	Mailer = sender

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/guests", event.ID), token, gin.H{
		"name":       "dana",
		"email":      "dana@example.com",
		"send_email": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AddGuestResponse
	decode(t, w, &resp)
	assert.True(t, resp.EmailSent)
	assert.Equal(t, []string{"dana@example.com"}, sender.sent)

	var guest models.Guest
	require.NoError(t, database.DB.Where("event_id = ? AND guest_name = ?", event.ID, "dana").First(&guest).Error)
	require.NotNil(t, guest.InviteSentAt)
	require.NotNil(t, guest.InviteMethod)
	assert.Equal(t, "email", *guest.InviteMethod)
}

func TestAddGuestLinksRegisteredAccountByEmail(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	registered, _ := createUser(t, "riley")
	event, _ := createEvent(t, host, "Friday Chaos")

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/guests", event.ID), token, gin.H{
		"name":  "Riley",
		"email": registered.Email,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var guest models.Guest
	require.NoError(t, database.DB.Where("event_id = ? AND guest_name = ?", event.ID, "Riley").First(&guest).Error)
	require.NotNil(t, guest.UserID)
	assert.Equal(t, registered.ID, *guest.UserID)
}

func TestResendInviteReusesToken(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	guest := addGuest(t, event, "dana")
	require.NoError(t, database.DB.Model(&guest).Update("guest_email", "dana@example.com").Error)
	before := guest.InviteToken

	sender := &fakeSender{}
	Mailer = sender

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/guests/%d/resend", event.ID, guest.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AddGuestResponse
	decode(t, w, &resp)
	assert.True(t, resp.EmailSent)

	var after models.Guest
	require.NoError(t, database.DB.First(&after, guest.ID).Error)
	assert.Equal(t, before, after.InviteToken, "resend must keep the single valid token")
}

func TestResendInviteRequiresEmail(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	guest := addGuest(t, event, "dana")

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/guests/%d/resend", event.ID, guest.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetBringingViaToken(t *testing.T) {
	router := setupTest(t)
	host, _ := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	guest := addGuest(t, event, "dana")

	url := fmt.Sprintf("/api/v1/events/%d/guests/%d/bringing?token=%s", event.ID, guest.ID, guest.InviteToken)
	w := doJSON(router, "PUT", url, "", gin.H{"item": "soda and chips"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Guest
	require.NoError(t, database.DB.First(&updated, guest.ID).Error)
	require.NotNil(t, updated.Bringing)
	assert.Equal(t, "soda and chips", *updated.Bringing)
}

func TestSetBringingForAnotherGuestIsHostOnly(t *testing.T) {
	router := setupTest(t)
	host, hostToken := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	dana := addGuest(t, event, "dana")
	eve := addGuest(t, event, "eve")

	// Eve cannot edit Dana's signup with her own token.
	url := fmt.Sprintf("/api/v1/events/%d/guests/%d/bringing?token=%s", event.ID, dana.ID, eve.InviteToken)
	w := doJSON(router, "PUT", url, "", gin.H{"item": "kale"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The host can.
	url = fmt.Sprintf("/api/v1/events/%d/guests/%d/bringing", event.ID, dana.ID)
	w = doJSON(router, "PUT", url, hostToken, gin.H{"item": "brownies"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetBringingRejectsBlankItem(t *testing.T) {
	router := setupTest(t)
	host, _ := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	guest := addGuest(t, event, "dana")

	url := fmt.Sprintf("/api/v1/events/%d/guests/%d/bringing?token=%s", event.ID, guest.ID, guest.InviteToken)
	w := doJSON(router, "PUT", url, "", gin.H{"item": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
