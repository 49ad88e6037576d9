package booking

import (
	"fmt"
	"math"
	"time"
)

// Status of a booking request. Requests start pending; the
// confirm/cancel transition exists as a back-office capability.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is a guest's request for a stay. PropertyID is a soft
// reference: deleting a listing does not cascade to its bookings.
type Booking struct {
	ID              string    `json:"id"`
	PropertyID      string    `json:"propertyId"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	TotalPrice      int64     `json:"totalPrice"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
}

// Billing months are flat 30-day periods, never prorated or aligned to
// the calendar. A stay shorter than a month still bills one full month.
const monthLength = 30 * 24 * time.Hour

// Months returns the number of billing months covered by the stay.
func Months(checkIn, checkOut time.Time) int {
	months := int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(monthLength)))
	if months < 1 {
		months = 1
	}
	return months
}

// TotalPrice is the monthly rate multiplied by the billing months.
func TotalPrice(pricePerMonth int64, checkIn, checkOut time.Time) int64 {
	return pricePerMonth * int64(Months(checkIn, checkOut))
}

// NewID generates a timestamp-based booking identifier.
func NewID(now time.Time) string {
	return fmt.Sprintf("booking-%d", now.UnixMilli())
}
