package handlers

import (
	"time"

	"fleet/internal/notify"
	"fleet/internal/services"
	"fleet/internal/store"
)

// API holds the services the HTTP handlers read from.
type API struct {
	Fleet         services.FleetService
	Feed          *services.ActivityFeed
	Dashboard     services.DashboardService
	Reports       services.ReportsService
	Notifications *notify.Buffer
	Schema        store.SchemaChecker
	ActivityLimit int
	Now           func() time.Time
}

// NewAPI wires the services over one store and error handler.
func NewAPI(s store.Store, errs *services.ErrorHandler, buf *notify.Buffer, activityLimit int) *API {
	fleet := services.FleetService{Store: s, Errors: errs}
	feed := services.NewActivityFeed(services.ActivityService{Store: s, Errors: errs})
	api := &API{
		Fleet:         fleet,
		Feed:          feed,
		Dashboard:     services.DashboardService{Fleet: fleet, Feed: feed},
		Reports:       services.ReportsService{Fleet: fleet},
		Notifications: buf,
		ActivityLimit: activityLimit,
	}
	if sc, ok := s.(store.SchemaChecker); ok {
		api.Schema = sc
	}
	return api
}

func (a *API) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
