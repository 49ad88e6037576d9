package booking

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	domainbooking "rentalhub/internal/domain/booking"
	"rentalhub/internal/infra/storage/memory"
)

// DefaultLatency mirrors the booking form's artificial processing
// pause.
const DefaultLatency = 1500 * time.Millisecond

// TopicBookingRequested is the event topic for created bookings.
const TopicBookingRequested = "bookings.requested"

var ErrPropertyNotFound = errors.New("booking: property not found")

// ValidationErrors maps form field names to user-facing messages. It
// is returned as the error when submission is blocked; every field is
// recoverable by correcting the input.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "booking: invalid fields: " + strings.Join(fields, ", ")
}

// FormData is the public booking form payload.
type FormData struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateForm applies the form's field checks. A zero time means the
// date was not supplied.
func ValidateForm(form FormData) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(form.GuestName) == "" {
		errs["guestName"] = "Имя обязательно"
	}
	if strings.TrimSpace(form.GuestEmail) == "" {
		errs["guestEmail"] = "Email обязателен"
	} else if !emailPattern.MatchString(form.GuestEmail) {
		errs["guestEmail"] = "Некорректный email"
	}
	if strings.TrimSpace(form.GuestPhone) == "" {
		errs["guestPhone"] = "Телефон обязателен"
	}
	if form.CheckIn.IsZero() {
		errs["checkIn"] = "Дата заезда обязательна"
	}
	if form.CheckOut.IsZero() {
		errs["checkOut"] = "Дата выезда обязательна"
	}
	if !form.CheckIn.IsZero() && !form.CheckOut.IsZero() && !form.CheckOut.After(form.CheckIn) {
		errs["checkOut"] = "Дата выезда должна быть позже даты заезда"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Publisher delivers application events to the broker, when one is
// wired.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error
}

// Service handles booking requests from the public form.
type Service struct {
	Bookings   *memory.BookingRepository
	Properties *memory.PropertyRepository
	Events     Publisher
	Logger     *slog.Logger
	Latency    time.Duration
	Now        func() time.Time
}

// Create validates the form, derives the total from the listing's
// monthly rate and appends a pending booking. The booking stays
// in memory until the next explicit save of the main bucket.
func (s *Service) Create(ctx context.Context, propertyID string, form FormData) (domainbooking.Booking, error) {
	wait(ctx, s.Latency)

	if errs := ValidateForm(form); errs != nil {
		return domainbooking.Booking{}, errs
	}
	prop, ok := s.Properties.ByID(propertyID)
	if !ok {
		return domainbooking.Booking{}, ErrPropertyNotFound
	}

	now := s.now()
	b := domainbooking.Booking{
		ID:              domainbooking.NewID(now),
		PropertyID:      propertyID,
		GuestName:       form.GuestName,
		GuestEmail:      form.GuestEmail,
		GuestPhone:      form.GuestPhone,
		CheckIn:         form.CheckIn,
		CheckOut:        form.CheckOut,
		Guests:          form.Guests,
		TotalPrice:      domainbooking.TotalPrice(prop.Price, form.CheckIn, form.CheckOut),
		Status:          domainbooking.StatusPending,
		CreatedAt:       now,
		SpecialRequests: form.SpecialRequests,
	}
	s.Bookings.Add(b)
	if s.Logger != nil {
		s.Logger.Info("booking requested",
			"booking_id", b.ID,
			"property_id", b.PropertyID,
			"months", domainbooking.Months(b.CheckIn, b.CheckOut),
			"total", b.TotalPrice)
	}
	s.publishRequested(ctx, b)
	return b, nil
}

func (s *Service) publishRequested(ctx context.Context, b domainbooking.Booking) {
	if s.Events == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"bookingId":  b.ID,
		"propertyId": b.PropertyID,
		"checkIn":    b.CheckIn.Format(time.RFC3339),
		"checkOut":   b.CheckOut.Format(time.RFC3339),
		"totalPrice": b.TotalPrice,
		"createdAt":  b.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := s.Events.Publish(ctx, TopicBookingRequested, b.ID, payload, nil); err != nil && s.Logger != nil {
		s.Logger.Warn("booking event publish failed", "booking_id", b.ID, "error", err)
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
