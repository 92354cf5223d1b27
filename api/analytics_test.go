package api

import (
	"net/http"
	"testing"

	"menuboard/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_Summary(t *testing.T) {
	store := newTestStore(t, true)
	_, err := store.ToggleAvailability(findItem(t, store, "Jalebi").ID)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/analytics", NewAnalyticsHandler(store).Summary)

	w := serve(router, "GET", "/analytics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.AnalyticsSummary{
		TotalCategories: 6,
		TotalItems:      15,
		AvailableItems:  14,
		ViewsToday:      123,
	}, decode[models.AnalyticsSummary](t, w))
}

func TestAnalyticsHandler_Summary_Empty(t *testing.T) {
	router := gin.New()
	router.GET("/analytics", NewAnalyticsHandler(newTestStore(t, false)).Summary)

	w := serve(router, "GET", "/analytics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalCategories":0,"totalItems":0,"availableItems":0,"viewsToday":123}`, w.Body.String())
}
