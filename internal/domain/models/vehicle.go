package models

const (
	VehicleStatusActive      = "active"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusInactive    = "inactive"
)

type Vehicle struct {
	ID          string  `json:"id"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PlateNumber string  `json:"plate_number"`
	Status      string  `json:"status"`
	Mileage     float64 `json:"mileage"`
	FuelType    string  `json:"fuel_type,omitempty"`
}

type VehicleView struct {
	Vehicle
	DisplayCode string `json:"display_code"`
}
