package local

import (
	"encoding/json"
	"time"

	"rentalhub/internal/domain/booking"
	"rentalhub/internal/domain/property"
)

// AppData is the main bucket: the property catalog and booking list
// plus the save timestamp. It persists only on an explicit save
// action, unlike the autosave buckets.
type AppData struct {
	Properties []property.Property
	Bookings   []booking.Booking
	LastSaved  time.Time
}

type appDocument struct {
	Properties []property.Property `json:"properties"`
	Bookings   []bookingDocument   `json:"bookings"`
	LastSaved  string              `json:"lastSaved"`
}

// bookingDocument is the stored form of a booking: date fields are
// RFC 3339 strings rather than native times.
type bookingDocument struct {
	ID              string `json:"id"`
	PropertyID      string `json:"propertyId"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	TotalPrice      int64  `json:"totalPrice"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

func encodeBookings(bookings []booking.Booking) []bookingDocument {
	docs := make([]bookingDocument, 0, len(bookings))
	for _, b := range bookings {
		docs = append(docs, bookingDocument{
			ID:              b.ID,
			PropertyID:      b.PropertyID,
			GuestName:       b.GuestName,
			GuestEmail:      b.GuestEmail,
			GuestPhone:      b.GuestPhone,
			CheckIn:         b.CheckIn.Format(time.RFC3339),
			CheckOut:        b.CheckOut.Format(time.RFC3339),
			Guests:          b.Guests,
			TotalPrice:      b.TotalPrice,
			Status:          string(b.Status),
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
			SpecialRequests: b.SpecialRequests,
		})
	}
	return docs
}

func decodeBookings(docs []bookingDocument) []booking.Booking {
	bookings := make([]booking.Booking, 0, len(docs))
	for _, d := range docs {
		bookings = append(bookings, booking.Booking{
			ID:              d.ID,
			PropertyID:      d.PropertyID,
			GuestName:       d.GuestName,
			GuestEmail:      d.GuestEmail,
			GuestPhone:      d.GuestPhone,
			CheckIn:         parseStoredTime(d.CheckIn),
			CheckOut:        parseStoredTime(d.CheckOut),
			Guests:          d.Guests,
			TotalPrice:      d.TotalPrice,
			Status:          booking.Status(d.Status),
			CreatedAt:       parseStoredTime(d.CreatedAt),
			SpecialRequests: d.SpecialRequests,
		})
	}
	return bookings
}

// parseStoredTime mirrors the loose date handling of the stored
// format: text that does not parse silently becomes the zero time.
func parseStoredTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SaveAppData serializes both collections under the main bucket along
// with a fresh save timestamp. Failures are reduced to a boolean; the
// detail goes to the log only.
func (s *Store) SaveAppData(properties []property.Property, bookings []booking.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if properties == nil {
		properties = []property.Property{}
	}
	doc := appDocument{
		Properties: properties,
		Bookings:   encodeBookings(bookings),
		LastSaved:  s.now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logError("app data encode failed", AppDataKey, err)
		return false
	}
	if err := s.setItem(AppDataKey, data); err != nil {
		s.logError("app data save failed", AppDataKey, err)
		return false
	}
	return true
}

// LoadAppData reads and parses the main bucket, reconstructing booking
// dates from their textual form. Returns nil when the bucket is absent
// or does not parse; the failure is swallowed, not surfaced.
func (s *Store) LoadAppData() *AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAppDataLocked()
}

func (s *Store) loadAppDataLocked() *AppData {
	data, ok := s.getItem(AppDataKey)
	if !ok {
		return nil
	}
	var doc appDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logError("app data parse failed", AppDataKey, err)
		return nil
	}
	return &AppData{
		Properties: doc.Properties,
		Bookings:   decodeBookings(doc.Bookings),
		LastSaved:  parseStoredTime(doc.LastSaved),
	}
}

// HasSavedData is an existence check only.
func (s *Store) HasSavedData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.getItem(AppDataKey)
	return ok
}

// ClearSavedData deletes the main bucket.
func (s *Store) ClearSavedData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.removeItem(AppDataKey); err != nil {
		s.logError("app data clear failed", AppDataKey, err)
		return false
	}
	return true
}

// LastSavedTime re-loads the main bucket solely to extract its save
// timestamp.
func (s *Store) LastSavedTime() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.loadAppDataLocked()
	if data == nil || data.LastSaved.IsZero() {
		return time.Time{}, false
	}
	return data.LastSaved, true
}
