package property

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTitleRequired   = errors.New("property: title required")
	ErrAddressRequired = errors.New("property: address required")
	ErrInvalidPrice    = errors.New("property: price must be positive")
	ErrInvalidStatus   = errors.New("property: unknown status")
)

// Status reflects how a listing is presented in the catalog.
type Status string

const (
	StatusAvailable Status = "available"
	StatusLimited   Status = "limited"
	StatusBooked    Status = "booked"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusLimited, StatusBooked:
		return true
	}
	return false
}

// Property is a rental listing. The JSON layout matches the stored
// document format, so a Property encodes byte-compatible with the
// bucket files and exported backups.
type Property struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       int64    `json:"price"`
	Bedrooms    Label    `json:"bedrooms"`
	Bathrooms   Label    `json:"bathrooms"`
	Area        float64  `json:"area"`
	Status      Status   `json:"status"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
}

// Validate applies the required-field checks used by the admin form.
// Missing coordinates are allowed: geocoding is best-effort and must
// never block saving a listing.
func (p *Property) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(p.Address) == "" {
		return ErrAddressRequired
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Matches reports whether the query occurs as a case-insensitive
// substring of the title, address or any amenity tag.
func (p Property) Matches(query string) bool {
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Address), needle) {
		return true
	}
	for _, amenity := range p.Amenities {
		if strings.Contains(strings.ToLower(amenity), needle) {
			return true
		}
	}
	return false
}

// NewID generates a timestamp-based identifier for listings created
// through the admin panel.
func NewID(now time.Time) string {
	return fmt.Sprintf("%d", now.UnixMilli())
}
