package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"rentalhub/internal/domain/content"
	"rentalhub/internal/infra/storage/memory"
)

// ContentHandler serves the editable pages. Reads come with the text
// already rendered into blocks; edits stay in memory until the admin
// saves or resets.
type ContentHandler struct {
	Navigation *memory.NavigationRepository
}

func (h *ContentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": h.Navigation.All()})
}

func (h *ContentHandler) Get(c *gin.Context) {
	page, ok := h.Navigation.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Страница не найдена"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":   page,
		"blocks": content.Render(page.Content),
	})
}

func (h *ContentHandler) GetHTML(c *gin.Context) {
	page, ok := h.Navigation.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Страница не найдена"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(content.RenderHTML(page.Content)))
}

func (h *ContentHandler) Update(c *gin.Context) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	page, ok := h.Navigation.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Страница не найдена"})
		return
	}
	if !page.IsEditable {
		c.JSON(http.StatusForbidden, gin.H{"error": "Страница не редактируется"})
		return
	}
	h.Navigation.UpdatePage(id, req.Title, req.Content)
	updated, _ := h.Navigation.ByID(id)
	c.JSON(http.StatusOK, updated)
}

func (h *ContentHandler) Save(c *gin.Context) {
	if !h.Navigation.Save() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить страницы"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ContentHandler) Reset(c *gin.Context) {
	if !h.Navigation.Reset() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сбросить страницы"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": h.Navigation.All()})
}
