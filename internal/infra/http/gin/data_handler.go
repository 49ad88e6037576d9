package ginserver

import (
	"io"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	backupsvc "rentalhub/internal/app/services/backup"
)

// importBodyLimit caps accepted backup documents at 10 MiB.
const importBodyLimit = 10 << 20

// DataHandler serves the explicit save, export and import actions of
// the admin data panel.
type DataHandler struct {
	Service *backupsvc.Service
}

func (h *DataHandler) Save(c *gin.Context) {
	if !h.Service.SaveAll() {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось сохранить данные"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DataHandler) Info(c *gin.Context) {
	has, last, ok := h.Service.Info()
	resp := gin.H{"hasSavedData": has, "lastSaved": nil}
	if ok {
		resp["lastSaved"] = last.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DataHandler) Clear(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": h.Service.Clear()})
}

func (h *DataHandler) Export(c *gin.Context) {
	name, data, err := h.Service.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *DataHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, importBodyLimit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Ошибка при обработке файла"})
		return
	}
	result := h.Service.Import(c.Request.Context(), raw)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
