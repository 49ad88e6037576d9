// Package memory holds the per-entity state containers backing the
// running application. Each repository loads from the local bucket
// store once at construction; whether a mutation persists immediately
// depends on the repository's persistence policy (see the autosave
// note on each type).
package memory

import (
	"strings"
	"sync"

	"rentalhub/internal/domain/property"
	"rentalhub/internal/infra/storage/local"
)

// PropertyRepository manages the listing catalog in memory. It is an
// explicit-save repository: mutations touch only the in-memory slice,
// nothing persists until the admin triggers a save of the main bucket.
type PropertyRepository struct {
	mu    sync.RWMutex
	items []property.Property
}

// NewPropertyRepository hydrates from saved data, falling back to the
// hardcoded seed catalog when nothing was ever saved.
func NewPropertyRepository(store *local.Store) *PropertyRepository {
	repo := &PropertyRepository{items: property.Seed()}
	if store != nil {
		if data := store.LoadAppData(); data != nil && len(data.Properties) > 0 {
			repo.items = data.Properties
		}
	}
	return repo
}

func (r *PropertyRepository) All() []property.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]property.Property(nil), r.items...)
}

func (r *PropertyRepository) Add(p property.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, p)
}

// Update replaces the listing with a matching id; false when absent.
func (r *PropertyRepository) Update(p property.Property) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = p
			return true
		}
	}
	return false
}

func (r *PropertyRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

func (r *PropertyRepository) ByID(id string) (property.Property, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, true
		}
	}
	return property.Property{}, false
}

// Available returns listings with the available status.
func (r *PropertyRepository) Available() []property.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]property.Property, 0, len(r.items))
	for _, p := range r.items {
		if p.Status == property.StatusAvailable {
			matches = append(matches, p)
		}
	}
	return matches
}

// Search filters by case-insensitive substring across title, address
// and amenity tags. An empty query matches everything.
func (r *PropertyRepository) Search(query string) []property.Property {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.All()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]property.Property, 0, len(r.items))
	for _, p := range r.items {
		if p.Matches(query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Replace swaps the whole catalog, used after a data import.
func (r *PropertyRepository) Replace(items []property.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]property.Property(nil), items...)
}
