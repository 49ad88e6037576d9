package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	authsvc "rentalhub/internal/app/services/auth"
)

// AdminGuard rejects back-office requests until a login succeeded.
// The flag is process-local, so a restart logs the admin out.
func AdminGuard(service *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !service.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Требуется вход"})
			return
		}
		c.Next()
	}
}
