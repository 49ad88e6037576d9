package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	authsvc "rentalhub/internal/app/services/auth"
	domainauth "rentalhub/internal/domain/auth"
)

// AuthHandler serves the admin login, logout and credential settings.
type AuthHandler struct {
	Service *authsvc.Service
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.Service.Login(c.Request.Context(), req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверное имя пользователя или пароль"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Service.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) UpdateCredentials(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		Username        string `json:"username"`
		Password        string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.Service.CheckCurrentPassword(req.CurrentPassword) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Неверный текущий пароль"})
		return
	}
	creds := domainauth.Credentials{Username: req.Username, Password: req.Password}
	if err := h.Service.UpdateCredentials(c.Request.Context(), creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) CheckPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": h.Service.CheckCurrentPassword(req.Password)})
}
