package handlers

import (
	"net/http"

	"fleet/internal/views"

	"github.com/gin-gonic/gin"
)

// GetTrips lists trips filtered by ?q= (search) and ?status=.
func (a *API) GetTrips(c *gin.Context) {
	f := views.NewTripFilter()
	f.SetSearch(c.Query("q"))
	f.SetStatus(c.Query("status"))

	trips, err := a.Fleet.Trips(c.Request.Context(), f)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}
