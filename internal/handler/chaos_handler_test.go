package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartChaosSessionGatedOnInProgress(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	// Status gate fires before the backing store is consulted.
	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/chaos", event.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChaosSessionUnavailableWithoutManager(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	startNight(t, event)

	w := doJSON(router, "POST", fmt.Sprintf("/api/v1/events/%d/chaos", event.ID), token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(router, "GET", fmt.Sprintf("/api/v1/events/%d/chaos", event.ID), token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
