package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"fleet/internal/domain"
	"fleet/internal/http/middleware"
	"fleet/internal/services"
	"fleet/internal/utils"
	"fleet/internal/views"

	"github.com/gin-gonic/gin"
)

// reportFilters builds the filters from ?tab=&range=&from=&to=. A from date
// switches the range to custom.
func reportFilters(c *gin.Context) (*views.ReportFilters, error) {
	f := views.NewReportFilters()
	if tab := strings.ToLower(strings.TrimSpace(c.Query("tab"))); tab != "" {
		f.SetActiveTab(tab)
	}
	if tr := strings.ToLower(strings.TrimSpace(c.Query("range"))); tr != "" {
		switch tr {
		case views.RangeWeek, views.RangeMonth, views.RangeQuarter, views.RangeYear, views.RangeCustom:
			f.SetTimeRange(tr)
		default:
			return nil, domain.ValidationError{Field: "range", Msg: fmt.Sprintf("unknown time range %q", tr)}
		}
	}

	var dr domain.DateRange
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := utils.ParseDate(raw)
		if err != nil {
			return nil, domain.ValidationError{Field: "from", Msg: "expected YYYY-MM-DD", Err: err}
		}
		dr.From = &from
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, err := utils.ParseDate(raw)
		if err != nil {
			return nil, domain.ValidationError{Field: "to", Msg: "expected YYYY-MM-DD", Err: err}
		}
		to = utils.EndOfDay(to)
		dr.To = &to
	}
	if dr.From != nil || dr.To != nil {
		f.SetDateRange(&dr)
	}
	return f, nil
}

func (a *API) buildReport(c *gin.Context) (services.Report, bool) {
	f, err := reportFilters(c)
	if err != nil {
		RespondAPIError(c, err)
		return services.Report{}, false
	}
	svc := a.Reports
	svc.RequestID = middleware.GetRequestID(c)
	rep, err := svc.Build(c.Request.Context(), f, a.now())
	if err != nil {
		RespondAPIError(c, err)
		return services.Report{}, false
	}
	return rep, true
}

func (a *API) GetReport(c *gin.Context) {
	rep, ok := a.buildReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rep)
}

// ExportReport returns the same report as a PDF attachment.
func (a *API) ExportReport(c *gin.Context) {
	rep, ok := a.buildReport(c)
	if !ok {
		return
	}
	svc := a.Reports
	svc.RequestID = middleware.GetRequestID(c)
	pdfBytes, filename, err := svc.ExportPDF(rep)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render report", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
