package services

import (
	"context"

	"fleet/internal/domain/models"

	"golang.org/x/sync/errgroup"
)

type DashboardSummary struct {
	TripsByStatus      map[string]int    `json:"trips_by_status"`
	TotalTrips         int               `json:"total_trips"`
	ActiveVehicles     int               `json:"active_vehicles"`
	TotalVehicles      int               `json:"total_vehicles"`
	OpenAlerts         int               `json:"open_alerts"`
	HighPriorityAlerts int               `json:"high_priority_alerts"`
	RecentActivities   []models.Activity `json:"recent_activities"`
	UrgentAlerts       []models.Alert    `json:"urgent_alerts"`
}

// DashboardService assembles the landing page from several tables in parallel.
type DashboardService struct {
	Fleet FleetService
	Feed  *ActivityFeed
}

// Summary loads activities, open alerts, trips and vehicles concurrently. Every load
// runs to completion (each reports its own failure); the first error is returned.
func (s DashboardService) Summary(ctx context.Context, activityLimit int) (DashboardSummary, error) {
	var (
		out      DashboardSummary
		trips    []models.TripView
		vehicles []models.VehicleView
		alerts   []models.Alert
	)

	var g errgroup.Group
	g.Go(func() error {
		items, _, err := s.Feed.Refresh(ctx, activityLimit)
		out.RecentActivities = items
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = s.Fleet.Alerts(ctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		trips, err = s.Fleet.Trips(ctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		vehicles, err = s.Fleet.Vehicles(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardSummary{}, err
	}

	out.TripsByStatus = map[string]int{}
	for _, t := range trips {
		out.TripsByStatus[t.Status]++
	}
	out.TotalTrips = len(trips)

	out.TotalVehicles = len(vehicles)
	for _, v := range vehicles {
		if v.Status == models.VehicleStatusActive {
			out.ActiveVehicles++
		}
	}

	out.OpenAlerts = len(alerts)
	out.UrgentAlerts = []models.Alert{}
	for _, a := range alerts {
		if a.Priority == models.PriorityHigh {
			out.HighPriorityAlerts++
			out.UrgentAlerts = append(out.UrgentAlerts, a)
		}
	}
	if out.RecentActivities == nil {
		out.RecentActivities = []models.Activity{}
	}
	return out, nil
}
