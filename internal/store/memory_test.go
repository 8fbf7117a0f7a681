package store

import (
	"context"
	"testing"
	"time"

	"fleet/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestMemoryStoreSelect_OrdersAndLimits(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.Put(TableActivities,
		Row{"id": "old", "timestamp": base},
		Row{"id": "new", "timestamp": base.Add(2 * time.Hour)},
		Row{"id": "mid", "timestamp": base.Add(time.Hour)},
	)

	rows, err := m.Select(context.Background(), Query{Table: TableActivities, OrderBy: "timestamp", Descending: true, Limit: 2})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	var ids []string
	for _, r := range rows {
		ids = append(ids, r["id"].(string))
	}
	if diff := cmp.Diff([]string{"new", "mid"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreSelect_NumericAndNilOrdering(t *testing.T) {
	m := NewMemoryStore()
	m.Put(TableParts,
		Row{"id": "b", "quantity": 10},
		Row{"id": "c", "quantity": nil},
		Row{"id": "a", "quantity": 2.5},
	)
	rows, err := m.Select(context.Background(), Query{Table: TableParts, OrderBy: "quantity"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	var ids []string
	for _, r := range rows {
		ids = append(ids, r["id"].(string))
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreSelect_MissingTable(t *testing.T) {
	_, err := NewMemoryStore().Select(context.Background(), Query{Table: TableTrips})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	type rec struct {
		Quantity int `json:"quantity"`
	}
	_, err := Decode[rec]([]Row{{"quantity": "many"}})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
