package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"fleet/internal/domain"
	"fleet/internal/domain/models"
	"fleet/internal/utils"
	"fleet/internal/views"

	"github.com/phpdave11/gofpdf"
)

type ReportRow struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Quantity float64 `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// Report is a per-tab aggregate over the selected window. Columns name the
// Label, Count, Quantity and Amount fields for the active tab.
type Report struct {
	Tab       string      `json:"tab"`
	TimeRange string      `json:"time_range"`
	From      time.Time   `json:"from"`
	To        time.Time   `json:"to"`
	Columns   [4]string   `json:"columns"`
	Money     bool        `json:"money"`
	Rows      []ReportRow `json:"rows"`
	Totals    ReportRow   `json:"totals"`
}

type ReportsService struct {
	Fleet     FleetService
	RequestID string
}

// Build aggregates the rows for the filters' active tab within their window.
func (s ReportsService) Build(ctx context.Context, f *views.ReportFilters, now time.Time) (Report, error) {
	from, to := f.Window(now)
	rep := Report{Tab: f.ActiveTab(), TimeRange: f.TimeRange(), From: from, To: to}
	in := func(t time.Time) bool { return !t.Before(from) && !t.After(to) }

	var err error
	switch f.ActiveTab() {
	case views.TabVehicles:
		err = s.vehicleReport(ctx, &rep, in)
	case views.TabDrivers:
		err = s.driverReport(ctx, &rep, in)
	case views.TabFuel:
		err = s.fuelReport(ctx, &rep, in)
	case views.TabMaintenance:
		err = s.maintenanceReport(ctx, &rep, in)
	default:
		return Report{}, domain.ValidationError{Field: "tab", Msg: fmt.Sprintf("unknown report tab %q", f.ActiveTab())}
	}
	if err != nil {
		return Report{}, err
	}

	sort.Slice(rep.Rows, func(i, j int) bool { return rep.Rows[i].Label < rep.Rows[j].Label })
	rep.Totals = ReportRow{Label: "Total"}
	for _, r := range rep.Rows {
		rep.Totals.Count += r.Count
		rep.Totals.Quantity += r.Quantity
		rep.Totals.Amount += r.Amount
	}
	utils.LogEvent(s.RequestID, "reports", "build", fmt.Sprintf("tab=%s rows=%d", rep.Tab, len(rep.Rows)))
	return rep, nil
}

type rowSet struct {
	order []string
	rows  map[string]*ReportRow
}

func newRowSet() *rowSet { return &rowSet{rows: map[string]*ReportRow{}} }

func (rs *rowSet) get(label string) *ReportRow {
	r, ok := rs.rows[label]
	if !ok {
		r = &ReportRow{Label: label}
		rs.rows[label] = r
		rs.order = append(rs.order, label)
	}
	return r
}

func (rs *rowSet) list() []ReportRow {
	out := make([]ReportRow, 0, len(rs.order))
	for _, k := range rs.order {
		out = append(out, *rs.rows[k])
	}
	return out
}

func vehicleLabels(vehicles []models.VehicleView) map[string]string {
	labels := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		label := v.PlateNumber
		if label == "" {
			label = v.DisplayCode
		}
		labels[v.ID] = label
	}
	return labels
}

func labelFor(labels map[string]string, vehicleID string) string {
	if l, ok := labels[vehicleID]; ok {
		return l
	}
	if vehicleID == "" {
		return "Unassigned"
	}
	return utils.FormatVehicleID(vehicleID)
}

func (s ReportsService) vehicleReport(ctx context.Context, rep *Report, in func(time.Time) bool) error {
	rep.Columns = [4]string{"Vehicle", "Trips", "Distance (km)", "Fuel cost"}
	rep.Money = true

	vehicles, err := s.Fleet.Vehicles(ctx)
	if err != nil {
		return err
	}
	trips, err := s.Fleet.Trips(ctx, nil)
	if err != nil {
		return err
	}
	fuel, err := s.Fleet.FuelLogs(ctx)
	if err != nil {
		return err
	}

	labels := vehicleLabels(vehicles)
	rs := newRowSet()
	for _, v := range vehicles {
		rs.get(labels[v.ID])
	}
	for _, t := range trips {
		if t.StartTime == nil || !in(*t.StartTime) {
			continue
		}
		r := rs.get(labelFor(labels, t.VehicleID))
		r.Count++
		r.Quantity += t.DistanceKm
	}
	for _, l := range fuel {
		if in(l.Date) {
			rs.get(labelFor(labels, l.VehicleID)).Amount += l.Cost
		}
	}
	rep.Rows = rs.list()
	return nil
}

func (s ReportsService) driverReport(ctx context.Context, rep *Report, in func(time.Time) bool) error {
	rep.Columns = [4]string{"Driver", "Trips", "Distance (km)", "Revenue"}
	rep.Money = true

	trips, err := s.Fleet.Trips(ctx, nil)
	if err != nil {
		return err
	}
	rs := newRowSet()
	for _, t := range trips {
		if t.StartTime == nil || !in(*t.StartTime) {
			continue
		}
		name := utils.NormalizeSpace(t.DriverName)
		if name == "" {
			name = "Unassigned"
		}
		r := rs.get(name)
		r.Count++
		r.Quantity += t.DistanceKm
		r.Amount += t.Revenue
	}
	rep.Rows = rs.list()
	return nil
}

func (s ReportsService) fuelReport(ctx context.Context, rep *Report, in func(time.Time) bool) error {
	rep.Columns = [4]string{"Vehicle", "Fill-ups", "Liters", "Cost"}
	rep.Money = true

	vehicles, err := s.Fleet.Vehicles(ctx)
	if err != nil {
		return err
	}
	fuel, err := s.Fleet.FuelLogs(ctx)
	if err != nil {
		return err
	}
	labels := vehicleLabels(vehicles)
	rs := newRowSet()
	for _, l := range fuel {
		if !in(l.Date) {
			continue
		}
		r := rs.get(labelFor(labels, l.VehicleID))
		r.Count++
		r.Quantity += l.Liters
		r.Amount += l.Cost
	}
	rep.Rows = rs.list()
	return nil
}

func (s ReportsService) maintenanceReport(ctx context.Context, rep *Report, in func(time.Time) bool) error {
	rep.Columns = [4]string{"Alert type", "Alerts", "Open", "High priority"}

	alerts, err := s.Fleet.Alerts(ctx, true)
	if err != nil {
		return err
	}
	rs := newRowSet()
	for _, a := range alerts {
		if !in(a.Date) {
			continue
		}
		r := rs.get(string(a.Type))
		r.Count++
		if !a.Resolved {
			r.Quantity++
		}
		if a.Priority == models.PriorityHigh {
			r.Amount++
		}
	}
	rep.Rows = rs.list()
	return nil
}

// ExportPDF renders rep as an A4 table and returns the document with a download name.
func (s ReportsService) ExportPDF(rep Report) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fleet report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLEET REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Report  : %s", rep.Tab))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Period  : %s to %s (%s)", utils.FormatDate(rep.From), utils.FormatDate(rep.To), rep.TimeRange))
	pdf.Ln(12)

	widths := []float64{70, 30, 40, 40}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range rep.Columns {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := make([]ReportRow, 0, len(rep.Rows)+1)
	lines = append(append(lines, rep.Rows...), rep.Totals)
	for _, r := range lines {
		cells := []string{r.Label, strconv.Itoa(r.Count), formatQuantity(r.Quantity), rep.formatAmount(r.Amount)}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Generated "+utils.FormatDateTime(time.Now()), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "export_pdf", fmt.Sprintf("tab=%s bytes=%d", rep.Tab, buf.Len()))

	filename := fmt.Sprintf("REPORT_%s_%s_%s.pdf", rep.Tab, utils.FormatDate(rep.From), utils.FormatDate(rep.To))
	return buf.Bytes(), filename, nil
}

func (r Report) formatAmount(v float64) string {
	if r.Money {
		return utils.FormatAmount(v)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
