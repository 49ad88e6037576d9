package memory

import (
	"log/slog"
	"sync"
	"time"

	"rentalhub/internal/domain/stats"
	"rentalhub/internal/infra/storage/local"
)

// StatisticsRepository manages the landing-page figures. It is an
// autosave repository: every mutation writes its bucket immediately,
// and a failed write leaves the in-memory state unchanged.
type StatisticsRepository struct {
	mu     sync.Mutex
	store  *local.Store
	logger *slog.Logger
	now    func() time.Time
	items  []stats.Item
}

func NewStatisticsRepository(store *local.Store, logger *slog.Logger) *StatisticsRepository {
	repo := &StatisticsRepository{
		store:  store,
		logger: logger,
		now:    time.Now,
		items:  stats.Defaults(),
	}
	if store != nil {
		if saved, ok := store.LoadStatistics(); ok {
			repo.items = saved
		}
	}
	return repo
}

// All returns the items sorted by display order.
func (r *StatisticsRepository) All() []stats.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := append([]stats.Item(nil), r.items...)
	stats.SortByOrder(items)
	return items
}

// Add appends a new item with a generated id, resorts by order and
// persists. Returns the created item and whether the write succeeded.
func (r *StatisticsRepository) Add(value, label string, order int) (stats.Item, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := stats.Item{
		ID:    stats.NewID(r.now()),
		Value: value,
		Label: label,
		Order: order,
	}
	next := append(append([]stats.Item(nil), r.items...), item)
	stats.SortByOrder(next)
	return item, r.commit(next)
}

// Update replaces the item with a matching id. An unknown id is not an
// error: the collection is rewritten as-is, matching the forgiving
// behavior of the editor form.
func (r *StatisticsRepository) Update(item stats.Item) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := append([]stats.Item(nil), r.items...)
	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
		}
	}
	return r.commit(next)
}

func (r *StatisticsRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]stats.Item, 0, len(r.items))
	for _, item := range r.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return r.commit(next)
}

// Reorder accepts the full collection in its new display sequence and
// reassigns order values 1..N before persisting.
func (r *StatisticsRepository) Reorder(items []stats.Item) ([]stats.Item, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]stats.Item, len(items))
	for i, item := range items {
		item.Order = i + 1
		next[i] = item
	}
	return next, r.commit(next)
}

// Reset clears the bucket and restores the hardcoded defaults.
func (r *StatisticsRepository) Reset() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.store != nil {
		if err := r.store.ClearStatistics(); err != nil && r.logger != nil {
			r.logger.Error("statistics reset failed", "error", err)
		}
	}
	r.items = stats.Defaults()
	return true
}

// Reload re-reads the bucket after an import replaced it.
func (r *StatisticsRepository) Reload() {
	if r.store == nil {
		return
	}
	saved, ok := r.store.LoadStatistics()
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.items = saved
	} else {
		r.items = stats.Defaults()
	}
}

// commit persists the candidate state and adopts it only on success.
func (r *StatisticsRepository) commit(next []stats.Item) bool {
	if r.store != nil {
		if err := r.store.SaveStatistics(next); err != nil {
			if r.logger != nil {
				r.logger.Error("statistics save failed", "error", err)
			}
			return false
		}
	}
	r.items = next
	return true
}
