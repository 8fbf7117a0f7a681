package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet/internal/http/middleware"
	"fleet/internal/notify"
	"fleet/internal/services"
	"fleet/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func seed() *store.MemoryStore {
	m := store.NewMemoryStore()
	m.Put(store.TableTrips,
		store.Row{"id": "9f1c2d3e-1", "client_name": "Acme", "driver_name": "Ana Diaz", "vehicle_id": "fff0",
			"vehicle_details": "Van", "status": "completed", "notes": "flight LH 400", "start_time": now.Add(-time.Hour)},
		store.Row{"id": "1a2b3c4d-2", "client_name": "Globex", "driver_name": "Ben Ode", "status": "scheduled",
			"start_time": now.Add(-2 * time.Hour)},
	)
	m.Put(store.TableParts,
		store.Row{"id": "p1", "name": "Oil filter", "quantity": 9, "min_quantity": 2, "updated_at": now},
		store.Row{"id": "p2", "name": "Brake pad", "quantity": 1, "min_quantity": 2, "updated_at": now.Add(-time.Hour)},
	)
	m.Put(store.TableActivities,
		store.Row{"id": "a1", "title": "one", "timestamp": now.Add(-3 * time.Minute), "type": "trip", "priority": "low"},
		store.Row{"id": "a2", "title": "two", "timestamp": now.Add(-2 * time.Minute), "type": "fuel", "priority": "low"},
		store.Row{"id": "a3", "title": "three", "timestamp": now.Add(-time.Minute), "type": "driver", "priority": "low"},
	)
	m.Put(store.TableAlerts,
		store.Row{"id": "al1", "title": "Service", "date": now.Add(-time.Hour), "type": "maintenance", "priority": "high"},
		store.Row{"id": "al2", "title": "Renewed", "date": now.Add(-time.Hour), "type": "insurance", "priority": "low", "resolved": true},
	)
	m.Put(store.TableVehicles, store.Row{"id": "fff0", "plate_number": "B 1 A", "status": "active"})
	m.Put(store.TableDrivers, store.Row{"id": "d1", "name": "Ana Diaz"})
	m.Put(store.TableFuelLogs, store.Row{"id": "f1", "vehicle_id": "fff0", "date": now.Add(-time.Hour), "liters": 20.0, "cost": 30.0})
	return m
}

func newTestAPI(s store.Store) (*API, *gin.Engine) {
	buf := notify.NewBuffer(10)
	a := NewAPI(s, services.NewErrorHandler(buf, zap.NewNop()), buf, 5)
	a.Now = func() time.Time { return now }

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/api/db-check", a.DBCheck)
	r.GET("/api/trips", a.GetTrips)
	r.GET("/api/parts", a.GetParts)
	r.GET("/api/activities", a.GetActivities)
	r.GET("/api/alerts", a.GetAlerts)
	r.GET("/api/drivers", a.GetDrivers)
	r.GET("/api/dashboard", a.GetDashboard)
	r.GET("/api/notifications", a.GetNotifications)
	r.GET("/api/reports", a.GetReport)
	r.GET("/api/reports/export", a.ExportReport)
	return a, r
}

func get(t *testing.T, r *gin.Engine, url string, out any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w
}

func TestGetTrips_FilterAndDecorations(t *testing.T) {
	_, r := newTestAPI(seed())

	var trips []map[string]any
	w := get(t, r, "/api/trips?status=completed", &trips)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, trips, 1)
	assert.Equal(t, "LH 400", trips[0]["flight_info"])
	assert.Equal(t, "V095", trips[0]["vehicle_code"])

	w = get(t, r, "/api/trips?q=1A2B3C4D", &trips)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, trips, 1)
	assert.Equal(t, "Globex", trips[0]["client_name"])
}

func TestGetParts_SortToggle(t *testing.T) {
	_, r := newTestAPI(seed())

	var resp struct {
		Sort  map[string]string `json:"sort"`
		Items []map[string]any  `json:"items"`
	}
	w := get(t, r, "/api/parts", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"column": "updated_at", "direction": "desc"}, resp.Sort)
	assert.Equal(t, "p1", resp.Items[0]["id"])

	resp.Items = nil
	get(t, r, "/api/parts?toggle=name", &resp)
	assert.Equal(t, map[string]string{"column": "name", "direction": "asc"}, resp.Sort)
	assert.Equal(t, "Brake pad", resp.Items[0]["name"])
	assert.Equal(t, true, resp.Items[0]["low_stock"])

	resp.Items = nil
	get(t, r, "/api/parts?sort=name&dir=asc&toggle=name", &resp)
	assert.Equal(t, "desc", resp.Sort["direction"])
	assert.Equal(t, "Oil filter", resp.Items[0]["name"])
}

func TestGetActivities(t *testing.T) {
	_, r := newTestAPI(seed())

	var items []map[string]any
	w := get(t, r, "/api/activities?limit=2", &items)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 2)
	assert.Equal(t, "a3", items[0]["id"])

	w = get(t, r, "/api/activities?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreFailureIsNotifiedAndReturned(t *testing.T) {
	_, r := newTestAPI(store.NewMemoryStore())

	var body map[string]any
	w := get(t, r, "/api/trips", &body)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "table trips not found", body["message"])
	assert.Equal(t, "not_found", body["code"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), body["request_id"])

	var notes []map[string]any
	get(t, r, "/api/notifications", &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, "Error", notes[0]["title"])
	assert.Equal(t, "Failed to load trips", notes[0]["description"])
	assert.Equal(t, "destructive", notes[0]["severity"])
	assert.Equal(t, body["request_id"], notes[0]["request_id"])
}

func TestGetAlertsAndDrivers(t *testing.T) {
	_, r := newTestAPI(seed())

	var alerts []map[string]any
	get(t, r, "/api/alerts", &alerts)
	assert.Len(t, alerts, 1)
	get(t, r, "/api/alerts?resolved=true", &alerts)
	assert.Len(t, alerts, 2)

	var drivers []map[string]any
	get(t, r, "/api/drivers", &drivers)
	require.Len(t, drivers, 1)
	assert.Equal(t, "AD", drivers[0]["initials"])
}

func TestGetDashboard(t *testing.T) {
	_, r := newTestAPI(seed())

	var sum map[string]any
	w := get(t, r, "/api/dashboard", &sum)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, sum["total_trips"])
	assert.EqualValues(t, 1, sum["open_alerts"])
	assert.Len(t, sum["recent_activities"], 3)
}

func TestGetReport(t *testing.T) {
	_, r := newTestAPI(seed())

	var rep map[string]any
	w := get(t, r, "/api/reports?tab=fuel&range=week", &rep)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fuel", rep["tab"])
	assert.Equal(t, "week", rep["time_range"])
	assert.Len(t, rep["rows"], 1)

	w = get(t, r, "/api/reports?from=2025-01-01&to=2025-01-31", &rep)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "custom", rep["time_range"])

	w = get(t, r, "/api/reports?tab=payroll", &rep)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", rep["code"])

	w = get(t, r, "/api/reports?range=decade", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportReport(t *testing.T) {
	_, r := newTestAPI(seed())

	w := get(t, r, "/api/reports/export?tab=drivers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "REPORT_drivers_")
	assert.True(t, len(w.Body.Bytes()) > 4 && string(w.Body.Bytes()[:4]) == "%PDF")
}

func TestDBCheck(t *testing.T) {
	_, r := newTestAPI(seed())
	var body map[string]any
	w := get(t, r, "/api/db-check", &body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["missing"])

	partial := store.NewMemoryStore()
	partial.Put(store.TableTrips)
	_, r = newTestAPI(partial)
	w = get(t, r, "/api/db-check", &body)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.EqualValues(t, len(store.Tables)-1, body["missing"])
}
