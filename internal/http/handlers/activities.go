package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) GetActivities(c *gin.Context) {
	limit, ok := queryInt(c, "limit", a.ActivityLimit)
	if !ok {
		return
	}
	items, _, err := a.Feed.Refresh(c.Request.Context(), limit)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
