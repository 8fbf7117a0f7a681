// Package views holds the list view-models of the dashboard: small state holders
// whose derived lists are recomputed from the latest input on every read.
package views

import (
	"strings"

	"fleet/internal/domain/models"
	"fleet/internal/utils"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// TripFilter narrows trips by free-text search and status.
type TripFilter struct {
	search string
	status string
}

func NewTripFilter() *TripFilter {
	return &TripFilter{status: StatusAll}
}

func (f *TripFilter) SetSearch(term string) { f.search = term }

// SetStatus sets the status filter; an empty value means StatusAll.
func (f *TripFilter) SetStatus(status string) {
	if status == "" {
		status = StatusAll
	}
	f.status = status
}

func (f *TripFilter) Search() string { return f.search }
func (f *TripFilter) Status() string { return f.status }

// Apply returns the trips matching both the search term and the status filter.
func (f *TripFilter) Apply(trips []models.Trip) []models.Trip {
	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if f.matchesSearch(t) && f.matchesStatus(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f *TripFilter) matchesStatus(t models.Trip) bool {
	return f.status == StatusAll || t.Status == f.status
}

func (f *TripFilter) matchesSearch(t models.Trip) bool {
	if f.search == "" {
		return true
	}
	for _, field := range []string{t.ClientName, t.DriverName, t.VehicleDetails, ShortID(t.ID)} {
		if utils.ContainsFold(field, f.search) {
			return true
		}
	}
	return false
}

// ShortID is the upper-cased 8 character prefix of an id, as shown in trip lists.
func ShortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
