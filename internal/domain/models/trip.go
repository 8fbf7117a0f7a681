package models

import "time"

// TripStatus values recognized by the dashboard. The set is open: rows with other
// values are kept but never match a concrete status filter.
const (
	TripStatusScheduled  = "scheduled"
	TripStatusInProgress = "in_progress"
	TripStatusCompleted  = "completed"
	TripStatusCancelled  = "cancelled"
)

// Trip is the display projection of a trip row.
type Trip struct {
	ID              string     `json:"id"`
	ClientName      string     `json:"client_name"`
	DriverName      string     `json:"driver_name"`
	VehicleID       string     `json:"vehicle_id,omitempty"`
	VehicleDetails  string     `json:"vehicle_details"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	PickupLocation  string     `json:"pickup_location,omitempty"`
	DropoffLocation string     `json:"dropoff_location,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DistanceKm      float64    `json:"distance_km,omitempty"`
	Revenue         float64    `json:"revenue,omitempty"`
}

// TripView decorates a trip with display-only derived fields.
type TripView struct {
	Trip
	FlightInfo  string `json:"flight_info,omitempty"`
	VehicleCode string `json:"vehicle_code,omitempty"`
}
