package api

import (
	stdhttp "net/http"

	intconfig "fleet/internal/config"
	h "fleet/internal/http/handlers"
	"fleet/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, a *h.API, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.L()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", a.DBCheck)
		api.GET("/routes", h.Routes)

		api.GET("/dashboard", a.GetDashboard)
		api.GET("/activities", a.GetActivities)
		api.GET("/notifications", a.GetNotifications)

		api.GET("/trips", a.GetTrips)
		api.GET("/parts", a.GetParts)
		api.GET("/alerts", a.GetAlerts)
		api.GET("/vehicles", a.GetVehicles)
		api.GET("/drivers", a.GetDrivers)
		api.GET("/fuel-logs", a.GetFuelLogs)

		reports := api.Group("/reports")
		reports.GET("", a.GetReport)
		reports.GET("/export", a.ExportReport)
	}

	h.SetRouter(r)
	return r
}
