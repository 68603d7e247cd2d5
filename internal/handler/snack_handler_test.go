package handler

import (
	"fmt"
	"net/http"
	"testing"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/snacks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSnackRosterGroupsSignups(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	dana := addGuest(t, event, "dana")
	riley := addGuest(t, event, "riley")
	addGuest(t, event, "jo") // no signup

	require.NoError(t, database.DB.Model(&dana).Update("bringing", "soda and chips").Error)
	require.NoError(t, database.DB.Model(&riley).Update("bringing", "homemade brownies").Error)

	w := doJSON(router, "GET", fmt.Sprintf("/api/v1/events/%d/snacks", event.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var roster snacks.Roster
	decode(t, w, &roster)
	assert.Equal(t, 2, roster.Total)

	// "soda and chips" lands in drinks: the drinks rule fires before snacks.
	require.Len(t, roster.Groups[snacks.CategoryDrinks], 1)
	assert.Equal(t, "dana", roster.Groups[snacks.CategoryDrinks][0].GuestName)
	require.Len(t, roster.Groups[snacks.CategoryDesserts], 1)
	assert.Equal(t, "riley", roster.Groups[snacks.CategoryDesserts][0].GuestName)
	assert.Empty(t, roster.Groups[snacks.CategorySnacks])
}

func TestGetSnackRosterEmptyState(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")

	w := doJSON(router, "GET", fmt.Sprintf("/api/v1/events/%d/snacks", event.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var roster snacks.Roster
	decode(t, w, &roster)
	assert.Zero(t, roster.Total)
	// Every category is present even when empty, for coverage rendering.
	assert.Len(t, roster.Groups, len(snacks.Categories))
}

func TestGetSnackRosterReclassifiesOnEdit(t *testing.T) {
	router := setupTest(t)
	host, token := createUser(t, "sam")
	event, _ := createEvent(t, host, "Friday Chaos")
	dana := addGuest(t, event, "dana")
	url := fmt.Sprintf("/api/v1/events/%d/snacks", event.ID)

	require.NoError(t, database.DB.Model(&dana).Update("bringing", "popcorn").Error)
	w := doJSON(router, "GET", url, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roster snacks.Roster
	decode(t, w, &roster)
	assert.Len(t, roster.Groups[snacks.CategorySnacks], 1)

	require.NoError(t, database.DB.Model(&dana).Update("bringing", "sparkling water").Error)
	w = doJSON(router, "GET", url, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &roster)
	assert.Empty(t, roster.Groups[snacks.CategorySnacks])
	assert.Len(t, roster.Groups[snacks.CategoryDrinks], 1)
}
