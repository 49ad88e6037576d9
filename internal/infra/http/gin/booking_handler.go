package ginserver

import (
	"errors"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	bookingsvc "rentalhub/internal/app/services/booking"
	domainbooking "rentalhub/internal/domain/booking"
	"rentalhub/internal/infra/storage/memory"
)

// BookingHandler serves the public booking form and the back-office
// booking views.
type BookingHandler struct {
	Service  *bookingsvc.Service
	Bookings *memory.BookingRepository
}

type bookingRequest struct {
	PropertyID      string `json:"propertyId"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := bookingsvc.FormData{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         parseDate(req.CheckIn),
		CheckOut:        parseDate(req.CheckOut),
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	b, err := h.Service.Create(c.Request.Context(), req.PropertyID, form)
	if err != nil {
		var fields bookingsvc.ValidationErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		if errors.Is(err, bookingsvc.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Объект не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": b,
		"months":  domainbooking.Months(b.CheckIn, b.CheckOut),
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	items := h.Bookings.All()
	c.JSON(http.StatusOK, gin.H{"bookings": items, "total": len(items)})
}

func (h *BookingHandler) ListForProperty(c *gin.Context) {
	items := h.Bookings.ForProperty(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"bookings": items, "total": len(items)})
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status domainbooking.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Недопустимый статус"})
		return
	}
	if !h.Bookings.UpdateStatus(c.Param("id"), req.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Бронирование не найдено"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseDate accepts the date-input format and full timestamps. A zero
// time means the field was empty or unparseable; validation reports it
// as missing either way.
func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}
