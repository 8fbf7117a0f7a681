package services

import (
	"context"

	"fleet/internal/domain"
	"fleet/internal/domain/models"
	"fleet/internal/store"
	"fleet/internal/utils"
	"fleet/internal/views"
)

// FleetService reads the fleet tables and decorates rows with display fields.
type FleetService struct {
	Store  store.Store
	Errors *ErrorHandler
}

func list[T any](ctx context.Context, s FleetService, q store.Query, failMsg string) ([]T, error) {
	out, err := store.List[T](ctx, s.Store, q)
	if err != nil {
		return nil, s.Errors.Handle(ctx, err, failMsg)
	}
	return out, nil
}

// Trips lists trips, newest start first, applying filter when given.
func (s FleetService) Trips(ctx context.Context, filter *views.TripFilter) ([]models.TripView, error) {
	trips, err := list[models.Trip](ctx, s, store.Query{Table: store.TableTrips, OrderBy: "start_time", Descending: true}, "Failed to load trips")
	if err != nil {
		return nil, err
	}
	if filter != nil {
		trips = filter.Apply(trips)
	}
	out := make([]models.TripView, 0, len(trips))
	for _, t := range trips {
		v := models.TripView{Trip: t, FlightInfo: utils.ExtractFlightInfo(t.Notes)}
		if t.VehicleID != "" {
			v.VehicleCode = utils.FormatVehicleID(t.VehicleID)
		}
		out = append(out, v)
	}
	return out, nil
}

// Parts lists parts matching search, ordered by the store according to cfg.
func (s FleetService) Parts(ctx context.Context, search string, cfg domain.SortConfig) ([]models.PartView, error) {
	if cfg.Column == "" {
		cfg = views.DefaultPartSort
	}
	parts, err := list[models.Part](ctx, s, store.Query{
		Table:      store.TableParts,
		OrderBy:    cfg.Column,
		Descending: cfg.Direction == domain.SortDesc,
	}, "Failed to load parts")
	if err != nil {
		return nil, err
	}
	parts = views.FilterParts(parts, search)
	out := make([]models.PartView, 0, len(parts))
	for _, p := range parts {
		out = append(out, models.PartView{Part: p, LowStock: p.LowStock()})
	}
	return out, nil
}

// Alerts lists maintenance alerts, newest first. includeResolved=false keeps open ones only.
func (s FleetService) Alerts(ctx context.Context, includeResolved bool) ([]models.Alert, error) {
	alerts, err := list[models.Alert](ctx, s, store.Query{Table: store.TableAlerts, OrderBy: "date", Descending: true}, "Failed to load maintenance alerts")
	if err != nil || includeResolved {
		return alerts, err
	}
	open := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !a.Resolved {
			open = append(open, a)
		}
	}
	return open, nil
}

func (s FleetService) Vehicles(ctx context.Context) ([]models.VehicleView, error) {
	vehicles, err := list[models.Vehicle](ctx, s, store.Query{Table: store.TableVehicles, OrderBy: "plate_number"}, "Failed to load vehicles")
	if err != nil {
		return nil, err
	}
	out := make([]models.VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, models.VehicleView{Vehicle: v, DisplayCode: utils.FormatVehicleID(v.ID)})
	}
	return out, nil
}

func (s FleetService) Drivers(ctx context.Context) ([]models.DriverView, error) {
	drivers, err := list[models.Driver](ctx, s, store.Query{Table: store.TableDrivers, OrderBy: "name"}, "Failed to load drivers")
	if err != nil {
		return nil, err
	}
	out := make([]models.DriverView, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, models.DriverView{Driver: d, Initials: utils.Initials(d.Name)})
	}
	return out, nil
}

func (s FleetService) FuelLogs(ctx context.Context) ([]models.FuelLog, error) {
	return list[models.FuelLog](ctx, s, store.Query{Table: store.TableFuelLogs, OrderBy: "date", Descending: true}, "Failed to load fuel logs")
}
