package ginserver

import (
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"

	"rentalhub/internal/infra/geo"
)

// GeoHandler exposes the address lookup used by the listing editor and
// the static map configuration consumed by the catalog map.
type GeoHandler struct {
	Geocoder         *geo.Geocoder
	APIKeyConfigured bool
}

func (h *GeoHandler) Geocode(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Адрес обязателен"})
		return
	}
	result, err := h.Geocoder.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Сервис геокодирования недоступен"})
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "result": result})
}

func (h *GeoHandler) MapConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"center":           geo.StPetersburgCenter,
		"zoom":             11,
		"miniMapZoom":      15,
		"bounds":           geo.StPetersburgBounds,
		"apiKeyConfigured": h.APIKeyConfigured,
	})
}
