package domain

import "time"

// SortDirection is either ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// ParseSortDirection accepts "asc"/"desc" (and the long forms), defaulting to asc.
func ParseSortDirection(s string) SortDirection {
	switch s {
	case "desc", "descending", "DESC":
		return SortDesc
	default:
		return SortAsc
	}
}

// SortConfig is replaced wholesale on every sort request.
type SortConfig struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`
}

// DateRange is an optional explicit range; a nil *DateRange means none selected.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}
