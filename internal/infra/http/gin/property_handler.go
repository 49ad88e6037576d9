package ginserver

import (
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"rentalhub/internal/domain/property"
	"rentalhub/internal/infra/geo"
	"rentalhub/internal/infra/storage/memory"
)

// PropertyHandler serves the public catalog and the admin CRUD over
// listings. Admin mutations touch memory only; the catalog persists
// through the explicit data save.
type PropertyHandler struct {
	Properties *memory.PropertyRepository
	Geocoder   *geo.Geocoder
	Logger     *slog.Logger
	Now        func() time.Time
}

func (h *PropertyHandler) List(c *gin.Context) {
	var items []property.Property
	switch {
	case c.Query("q") != "":
		items = h.Properties.Search(c.Query("q"))
	case c.Query("status") == string(property.StatusAvailable):
		items = h.Properties.Available()
	default:
		items = h.Properties.All()
	}
	c.JSON(http.StatusOK, gin.H{"properties": items, "total": len(items)})
}

func (h *PropertyHandler) Get(c *gin.Context) {
	p, ok := h.Properties.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Объект не найден"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var p property.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := p.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = property.NewID(h.now())
	h.locate(c, &p)
	h.Properties.Add(p)
	if h.Logger != nil {
		h.Logger.Info("property created", "property_id", p.ID, "title", p.Title)
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	var p property.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")
	if err := p.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.locate(c, &p)
	if !h.Properties.Update(p) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Объект не найден"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	if !h.Properties.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Объект не найден"})
		return
	}
	c.Status(http.StatusNoContent)
}

// locate fills missing coordinates from the geocoder, falling back to
// a random in-city point so every listing shows up on the map. Lookup
// failures never block the save.
func (h *PropertyHandler) locate(c *gin.Context, p *property.Property) {
	if p.Lat != 0 || p.Lng != 0 {
		return
	}
	if h.Geocoder != nil {
		result, err := h.Geocoder.Geocode(c.Request.Context(), p.Address)
		if err == nil && result != nil && result.IsInStPetersburg {
			p.Lat = result.Lat
			p.Lng = result.Lng
			return
		}
		if err != nil && h.Logger != nil {
			h.Logger.Warn("geocode during save failed", "address", p.Address, "error", err)
		}
	}
	point := geo.RandomStPetersburgPoint()
	p.Lat = point.Lat
	p.Lng = point.Lng
}

func (h *PropertyHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
