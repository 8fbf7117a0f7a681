package views

import (
	"time"

	"fleet/internal/domain"
)

const (
	TabVehicles    = "vehicles"
	TabDrivers     = "drivers"
	TabFuel        = "fuel"
	TabMaintenance = "maintenance"

	RangeWeek    = "week"
	RangeMonth   = "month"
	RangeQuarter = "quarter"
	RangeYear    = "year"
	RangeCustom  = "custom"
)

// ReportFilters is the state of the reports page.
type ReportFilters struct {
	activeTab string
	timeRange string
	dateRange *domain.DateRange
}

func NewReportFilters() *ReportFilters {
	return &ReportFilters{activeTab: TabVehicles, timeRange: RangeMonth}
}

func (r *ReportFilters) ActiveTab() string { return r.activeTab }

func (r *ReportFilters) TimeRange() string { return r.timeRange }

func (r *ReportFilters) DateRange() *domain.DateRange { return r.dateRange }

func (r *ReportFilters) SetActiveTab(tab string) { r.activeTab = tab }

func (r *ReportFilters) SetTimeRange(tr string) { r.timeRange = tr }

// SetDateRange stores dr; a range with a start date switches the time range to custom.
func (r *ReportFilters) SetDateRange(dr *domain.DateRange) {
	r.dateRange = dr
	if dr != nil && dr.From != nil {
		r.timeRange = RangeCustom
	}
}

// ClearDateRange drops any explicit range and returns to the monthly view.
func (r *ReportFilters) ClearDateRange() {
	r.dateRange = nil
	r.timeRange = RangeMonth
}

// Window resolves the filters into a concrete [from, to] interval ending at now.
// A custom range without a start falls back to the monthly window.
func (r *ReportFilters) Window(now time.Time) (time.Time, time.Time) {
	switch r.timeRange {
	case RangeWeek:
		return now.AddDate(0, 0, -7), now
	case RangeQuarter:
		return now.AddDate(0, -3, 0), now
	case RangeYear:
		return now.AddDate(-1, 0, 0), now
	case RangeCustom:
		if r.dateRange != nil && r.dateRange.From != nil {
			to := now
			if r.dateRange.To != nil {
				to = *r.dateRange.To
			}
			return *r.dateRange.From, to
		}
	}
	return now.AddDate(0, -1, 0), now
}
