package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"rentalhub/internal/domain/stats"
	"rentalhub/internal/infra/storage/memory"
)

// StatsHandler serves the landing-page figures. The repository
// autosaves, so every mutation here hits the statistics bucket.
type StatsHandler struct {
	Statistics *memory.StatisticsRepository
}

func (h *StatsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statistics": h.Statistics.All()})
}

type statRequest struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

func (h *StatsHandler) Create(c *gin.Context) {
	var req statRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Order <= 0 {
		req.Order = len(h.Statistics.All()) + 1
	}
	item, ok := h.Statistics.Add(req.Value, req.Label, req.Order)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить показатель"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *StatsHandler) Update(c *gin.Context) {
	var req statRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := stats.Item{
		ID:    c.Param("id"),
		Value: req.Value,
		Label: req.Label,
		Order: req.Order,
	}
	if !h.Statistics.Update(item) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить показатель"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *StatsHandler) Delete(c *gin.Context) {
	if !h.Statistics.Delete(c.Param("id")) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить показатели"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StatsHandler) Reorder(c *gin.Context) {
	var req struct {
		Statistics []stats.Item `json:"statistics"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, ok := h.Statistics.Reorder(req.Statistics)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить порядок"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": items})
}

func (h *StatsHandler) Reset(c *gin.Context) {
	h.Statistics.Reset()
	c.JSON(http.StatusOK, gin.H{"statistics": h.Statistics.All()})
}
