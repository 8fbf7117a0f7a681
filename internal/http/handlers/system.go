package handlers

import (
	"net/http"
	"sync"

	"fleet/internal/store"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "fleet api running"})
}

// DBCheck reports which dashboard tables the store can see.
func (a *API) DBCheck(c *gin.Context) {
	if a.Schema == nil {
		RespondError(c, http.StatusServiceUnavailable, "store does not report its schema", nil)
		return
	}
	tables := make(gin.H, len(store.Tables))
	missing := 0
	for _, t := range store.Tables {
		ok, err := a.Schema.HasTable(c.Request.Context(), t)
		if err != nil {
			RespondAPIError(c, err)
			return
		}
		if !ok {
			missing++
		}
		tables[t] = ok
	}
	status := http.StatusOK
	if missing > 0 {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"tables": tables, "missing": missing})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
