// Package store is the read side of the fleet data store: rows are requested by
// table name with an optional ordering and limit, then decoded into records.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"fleet/internal/domain"
)

const (
	TableTrips      = "trips"
	TableParts      = "parts"
	TableActivities = "activities"
	TableAlerts     = "maintenance_alerts"
	TableVehicles   = "vehicles"
	TableDrivers    = "drivers"
	TableFuelLogs   = "fuel_logs"
)

// Tables lists every table the dashboard reads.
var Tables = []string{
	TableTrips, TableParts, TableActivities, TableAlerts, TableVehicles, TableDrivers, TableFuelLogs,
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Row is one record as returned by the store, keyed by column name.
type Row map[string]any

// Query describes a read request. Zero Limit means no limit.
type Query struct {
	Table      string
	OrderBy    string
	Descending bool
	Limit      int
}

func (q Query) Validate() error {
	if !identPattern.MatchString(q.Table) {
		return domain.ValidationError{Field: "table", Msg: fmt.Sprintf("invalid table name %q", q.Table)}
	}
	if q.OrderBy != "" && !identPattern.MatchString(q.OrderBy) {
		return domain.ValidationError{Field: "order_by", Msg: fmt.Sprintf("invalid column name %q", q.OrderBy)}
	}
	if q.Limit < 0 {
		return domain.ValidationError{Field: "limit", Msg: "must not be negative"}
	}
	return nil
}

// Store is the remote data store capability.
type Store interface {
	Select(ctx context.Context, q Query) ([]Row, error)
}

// SchemaChecker is implemented by stores that can report which tables exist.
type SchemaChecker interface {
	HasTable(ctx context.Context, table string) (bool, error)
}

// List runs q against s and decodes the rows into T.
func List[T any](ctx context.Context, s Store, q Query) ([]T, error) {
	rows, err := s.Select(ctx, q)
	if err != nil {
		return nil, err
	}
	return Decode[T](rows)
}

// Decode converts rows into typed records through their JSON representation.
func Decode[T any](rows []Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, r := range rows {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, domain.InternalError{Msg: fmt.Sprintf("encode row %d", i), Err: err}
		}
		var rec T
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, domain.InternalError{Msg: fmt.Sprintf("decode row %d", i), Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}
