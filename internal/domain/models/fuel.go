package models

import "time"

// FuelLog records one refuelling of a vehicle.
type FuelLog struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicle_id"`
	Date      time.Time `json:"date"`
	Liters    float64   `json:"liters"`
	Cost      float64   `json:"cost"`
	Odometer  float64   `json:"odometer,omitempty"`
	Station   string    `json:"station,omitempty"`
}
