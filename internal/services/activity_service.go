package services

import (
	"context"
	"sync"

	"fleet/internal/domain/models"
	"fleet/internal/store"
)

// DefaultActivityLimit is how many activities the dashboard shows.
const DefaultActivityLimit = 5

const msgLoadActivities = "Failed to load recent activities"

type ActivityService struct {
	Store  store.Store
	Errors *ErrorHandler
}

// Recent returns up to limit activities, newest first. limit <= 0 means
// DefaultActivityLimit. Failures are reported and returned as domain.APIError.
func (s ActivityService) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	out, err := store.List[models.Activity](ctx, s.Store, store.Query{
		Table:      store.TableActivities,
		OrderBy:    "timestamp",
		Descending: true,
		Limit:      limit,
	})
	if err != nil {
		return nil, s.Errors.Handle(ctx, err, msgLoadActivities)
	}
	return out, nil
}

// ActivityFeed caches the result of the latest Refresh. When refreshes overlap,
// only the most recently started one may update the snapshot.
type ActivityFeed struct {
	Service ActivityService

	mu     sync.Mutex
	gen    uint64
	items  []models.Activity
	err    error
	loaded bool
}

func NewActivityFeed(svc ActivityService) *ActivityFeed {
	return &ActivityFeed{Service: svc}
}

// Refresh fetches limit activities. It returns the fetched result and whether it
// was applied to the snapshot (false when a later refresh superseded it).
func (f *ActivityFeed) Refresh(ctx context.Context, limit int) ([]models.Activity, bool, error) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	items, err := f.Service.Recent(ctx, limit)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return items, false, err
	}
	f.items, f.err, f.loaded = items, err, true
	return items, true, err
}

// Snapshot returns the last applied result. loaded is false until a refresh completes.
func (f *ActivityFeed) Snapshot() (items []models.Activity, loaded bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Activity, len(f.items))
	copy(out, f.items)
	return out, f.loaded, f.err
}
