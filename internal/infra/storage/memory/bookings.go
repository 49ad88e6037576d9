package memory

import (
	"sync"

	"rentalhub/internal/domain/booking"
	"rentalhub/internal/infra/storage/local"
)

// BookingRepository manages booking requests in memory. Like the
// property repository it is explicit-save: the main bucket persists
// only through the save action.
type BookingRepository struct {
	mu    sync.RWMutex
	items []booking.Booking
}

func NewBookingRepository(store *local.Store) *BookingRepository {
	repo := &BookingRepository{}
	if store != nil {
		if data := store.LoadAppData(); data != nil && len(data.Bookings) > 0 {
			repo.items = data.Bookings
		}
	}
	return repo
}

func (r *BookingRepository) All() []booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]booking.Booking(nil), r.items...)
}

func (r *BookingRepository) Add(b booking.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, b)
}

func (r *BookingRepository) ForProperty(propertyID string) []booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]booking.Booking, 0)
	for _, b := range r.items {
		if b.PropertyID == propertyID {
			matches = append(matches, b)
		}
	}
	return matches
}

// UpdateStatus transitions a booking; false when the id is unknown.
// Exposed to the back office, though the public flow never calls it.
func (r *BookingRepository) UpdateStatus(id string, status booking.Status) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			return true
		}
	}
	return false
}

// Replace swaps the whole collection, used after a data import.
func (r *BookingRepository) Replace(items []booking.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]booking.Booking(nil), items...)
}
