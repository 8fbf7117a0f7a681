package handlers

import (
	"net/http"
	"strings"

	"fleet/internal/domain"
	"fleet/internal/views"

	"github.com/gin-gonic/gin"
)

// GetParts lists parts. ?sort=&dir= carry the current configuration and
// ?toggle=<column> applies one header click on top of it.
func (a *API) GetParts(c *gin.Context) {
	ps := views.PartSortFrom(domain.SortConfig{
		Column:    strings.TrimSpace(c.Query("sort")),
		Direction: domain.ParseSortDirection(c.Query("dir")),
	})
	if col := strings.TrimSpace(c.Query("toggle")); col != "" {
		ps.Sort(col)
	}

	parts, err := a.Fleet.Parts(c.Request.Context(), strings.TrimSpace(c.Query("q")), ps.Config())
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sort": ps.Config(), "items": parts})
}
