package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"rentalhub/internal/infra/config"
	"rentalhub/internal/infra/obs"
)

type PropertyHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type BookingHTTP interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	ListForProperty(c *gin.Context)
	UpdateStatus(c *gin.Context)
}

type StatisticsHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Reorder(c *gin.Context)
	Reset(c *gin.Context)
}

type ContentHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	GetHTML(c *gin.Context)
	Update(c *gin.Context)
	Save(c *gin.Context)
	Reset(c *gin.Context)
}

type AuthHTTP interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	UpdateCredentials(c *gin.Context)
	CheckPassword(c *gin.Context)
}

type DataHTTP interface {
	Save(c *gin.Context)
	Info(c *gin.Context)
	Clear(c *gin.Context)
	Export(c *gin.Context)
	Import(c *gin.Context)
}

type GeoHTTP interface {
	Geocode(c *gin.Context)
	MapConfig(c *gin.Context)
}

type Handlers struct {
	Properties PropertyHTTP
	Bookings   BookingHTTP
	Statistics StatisticsHTTP
	Content    ContentHTTP
	Auth       AuthHTTP
	Data       DataHTTP
	Geo        GeoHTTP

	AdminGuard     gin.HandlerFunc
	BookingLimiter gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Properties != nil {
		api.GET("/properties", h.Properties.List)
		api.GET("/properties/:id", h.Properties.Get)
	}
	if h.Bookings != nil {
		api.GET("/properties/:id/bookings", h.Bookings.ListForProperty)
		if h.BookingLimiter != nil {
			api.POST("/bookings", h.BookingLimiter, h.Bookings.Create)
		} else {
			api.POST("/bookings", h.Bookings.Create)
		}
	}
	if h.Statistics != nil {
		api.GET("/statistics", h.Statistics.List)
	}
	if h.Content != nil {
		api.GET("/pages", h.Content.List)
		api.GET("/pages/:id", h.Content.Get)
		api.GET("/pages/:id/html", h.Content.GetHTML)
	}
	if h.Geo != nil {
		api.GET("/map/config", h.Geo.MapConfig)
	}

	admin := api.Group("/admin")
	if h.Auth != nil {
		admin.POST("/login", h.Auth.Login)
	}
	protected := admin.Group("")
	if h.AdminGuard != nil {
		protected.Use(h.AdminGuard)
	}
	if h.Auth != nil {
		protected.POST("/logout", h.Auth.Logout)
		protected.PUT("/credentials", h.Auth.UpdateCredentials)
		protected.POST("/credentials/check", h.Auth.CheckPassword)
	}
	if h.Properties != nil {
		protected.POST("/properties", h.Properties.Create)
		protected.PUT("/properties/:id", h.Properties.Update)
		protected.DELETE("/properties/:id", h.Properties.Delete)
	}
	if h.Bookings != nil {
		protected.GET("/bookings", h.Bookings.List)
		protected.PATCH("/bookings/:id/status", h.Bookings.UpdateStatus)
	}
	if h.Statistics != nil {
		protected.POST("/statistics", h.Statistics.Create)
		protected.PUT("/statistics/reorder", h.Statistics.Reorder)
		protected.POST("/statistics/reset", h.Statistics.Reset)
		protected.PUT("/statistics/:id", h.Statistics.Update)
		protected.DELETE("/statistics/:id", h.Statistics.Delete)
	}
	if h.Content != nil {
		protected.PUT("/pages/:id", h.Content.Update)
		protected.POST("/pages/save", h.Content.Save)
		protected.POST("/pages/reset", h.Content.Reset)
	}
	if h.Data != nil {
		protected.POST("/data/save", h.Data.Save)
		protected.GET("/data/info", h.Data.Info)
		protected.DELETE("/data", h.Data.Clear)
		protected.GET("/data/export", h.Data.Export)
		protected.POST("/data/import", h.Data.Import)
	}
	if h.Geo != nil {
		protected.POST("/geocode", h.Geo.Geocode)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
