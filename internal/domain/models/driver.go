package models

type Driver struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Status        string `json:"status"`
}

type DriverView struct {
	Driver
	Initials string `json:"initials"`
}
