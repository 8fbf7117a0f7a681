package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fleet/internal/domain"
)

// MemoryStore keeps tables in memory for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]Row
	// Err, when set, is returned by every Select.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][]Row)}
}

// Put replaces the contents of table.
func (m *MemoryStore) Put(table string, rows ...Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]Row, len(rows))
	copy(cp, rows)
	m.tables[table] = cp
}

func (m *MemoryStore) Select(ctx context.Context, q Query) ([]Row, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, translateError(err)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	src, ok := m.tables[q.Table]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("table %s", q.Table)}
	}

	out := make([]Row, len(src))
	copy(out, src)
	if q.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			c := compareValues(out[i][q.OrderBy], out[j][q.OrderBy])
			if q.Descending {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *MemoryStore) HasTable(_ context.Context, table string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.tables[table]
	return ok, nil
}

// compareValues orders nil first, then numbers, times and strings by natural order.
// Mismatched kinds fall back to comparing their printed form.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
