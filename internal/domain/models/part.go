package models

import "time"

type Part struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PartNumber  string    `json:"part_number"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Supplier    string    `json:"supplier,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LowStock reports whether the part is at or below its reorder level.
func (p Part) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}

type PartView struct {
	Part
	LowStock bool `json:"low_stock"`
}
