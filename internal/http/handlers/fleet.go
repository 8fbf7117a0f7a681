package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAlerts lists open alerts; ?resolved=true includes resolved ones.
func (a *API) GetAlerts(c *gin.Context) {
	alerts, err := a.Fleet.Alerts(c.Request.Context(), queryBool(c, "resolved"))
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (a *API) GetVehicles(c *gin.Context) {
	vehicles, err := a.Fleet.Vehicles(c.Request.Context())
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (a *API) GetDrivers(c *gin.Context) {
	drivers, err := a.Fleet.Drivers(c.Request.Context())
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (a *API) GetFuelLogs(c *gin.Context) {
	logs, err := a.Fleet.FuelLogs(c.Request.Context())
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (a *API) GetDashboard(c *gin.Context) {
	sum, err := a.Dashboard.Summary(c.Request.Context(), a.ActivityLimit)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GetNotifications returns the buffered notifications, newest first.
func (a *API) GetNotifications(c *gin.Context) {
	if a.Notifications == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, a.Notifications.Recent())
}
