package services

import (
	"context"
	"sync"
	"time"

	"fleet/internal/notify"
	"fleet/internal/store"

	"go.uber.org/zap"
)

type recorder struct {
	mu    sync.Mutex
	calls []notify.Notification
}

func (r *recorder) Notify(_ context.Context, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, n)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newHandler() (*ErrorHandler, *recorder) {
	rec := &recorder{}
	return NewErrorHandler(rec, zap.NewNop()), rec
}

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func seededStore() *store.MemoryStore {
	m := store.NewMemoryStore()
	m.Put(store.TableActivities,
		store.Row{"id": "a1", "title": "Trip started", "timestamp": t0, "type": "trip", "priority": "low"},
		store.Row{"id": "a2", "title": "Fuel logged", "timestamp": t0.Add(time.Hour), "type": "fuel", "priority": "medium"},
		store.Row{"id": "a3", "title": "Brake check", "timestamp": t0.Add(2 * time.Hour), "type": "maintenance", "priority": "high"},
		store.Row{"id": "a4", "title": "Driver added", "timestamp": t0.Add(3 * time.Hour), "type": "driver", "priority": "low"},
		store.Row{"id": "a5", "title": "Vehicle added", "timestamp": t0.Add(4 * time.Hour), "type": "vehicle", "priority": "low"},
		store.Row{"id": "a6", "title": "Trip completed", "timestamp": t0.Add(5 * time.Hour), "type": "trip", "priority": "low"},
	)
	m.Put(store.TableVehicles,
		store.Row{"id": "abc4e2f0-0000-4000-8000-000000000001", "make": "Toyota", "model": "Hiace", "plate_number": "B 1234 XY", "status": "active"},
		store.Row{"id": "123e4567-0000-4000-8000-000000000002", "make": "Ford", "model": "Transit", "plate_number": "B 9876 ZZ", "status": "maintenance"},
	)
	m.Put(store.TableTrips,
		store.Row{"id": "t-0001-aaaa", "client_name": "Acme", "driver_name": "John Smith", "vehicle_id": "abc4e2f0-0000-4000-8000-000000000001",
			"vehicle_details": "Toyota Hiace", "status": "completed", "notes": "Flight: BA 249, Terminal: 5",
			"start_time": t0.Add(-48 * time.Hour), "distance_km": 120.5, "revenue": 300.0},
		store.Row{"id": "t-0002-bbbb", "client_name": "Globex", "driver_name": "Maria Lopez", "vehicle_id": "123e4567-0000-4000-8000-000000000002",
			"vehicle_details": "Ford Transit", "status": "scheduled", "start_time": t0.Add(24 * time.Hour), "distance_km": 40.0, "revenue": 90.0},
		store.Row{"id": "t-0003-cccc", "client_name": "Initech", "driver_name": "John Smith", "vehicle_id": "abc4e2f0-0000-4000-8000-000000000001",
			"vehicle_details": "Toyota Hiace", "status": "completed", "start_time": t0.AddDate(-1, 0, 0), "distance_km": 999.0, "revenue": 1.0},
	)
	m.Put(store.TableParts,
		store.Row{"id": "p1", "name": "Oil filter", "part_number": "OF-100", "category": "Engine", "quantity": 12, "min_quantity": 5, "updated_at": t0},
		store.Row{"id": "p2", "name": "Brake pad", "part_number": "BP-220", "category": "Brakes", "quantity": 2, "min_quantity": 4, "updated_at": t0.Add(time.Hour)},
	)
	m.Put(store.TableAlerts,
		store.Row{"id": "al1", "title": "Service due", "date": t0.Add(-24 * time.Hour), "type": "maintenance", "priority": "high", "resolved": false},
		store.Row{"id": "al2", "title": "Insurance renewal", "date": t0.Add(-72 * time.Hour), "type": "insurance", "priority": "medium", "resolved": true},
		store.Row{"id": "al3", "title": "Tyre check", "date": t0.Add(-12 * time.Hour), "type": "inspection", "priority": "low", "resolved": false},
	)
	m.Put(store.TableDrivers,
		store.Row{"id": "d1", "name": "John Smith", "status": "active"},
		store.Row{"id": "d2", "name": "", "status": "inactive"},
	)
	m.Put(store.TableFuelLogs,
		store.Row{"id": "f1", "vehicle_id": "abc4e2f0-0000-4000-8000-000000000001", "date": t0.Add(-24 * time.Hour), "liters": 40.0, "cost": 60.5},
		store.Row{"id": "f2", "vehicle_id": "unknown-vehicle", "date": t0.Add(-24 * time.Hour), "liters": 10.0, "cost": 15.0},
	)
	return m
}
