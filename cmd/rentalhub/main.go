package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	authsvc "rentalhub/internal/app/services/auth"
	backupsvc "rentalhub/internal/app/services/backup"
	bookingsvc "rentalhub/internal/app/services/booking"
	"rentalhub/internal/infra/broker/kafka"
	"rentalhub/internal/infra/config"
	"rentalhub/internal/infra/geo"
	ginserver "rentalhub/internal/infra/http/gin"
	"rentalhub/internal/infra/obs"
	"rentalhub/internal/infra/storage/local"
	"rentalhub/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, health, cleanup, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, health, app)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "data_dir", cfg.DataDir)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildApplication(cfg config.Config, logger *slog.Logger) (ginserver.Handlers, obs.HealthHandlers, func(), error) {
	store, err := local.NewStore(cfg.DataDir, logger)
	if err != nil {
		return ginserver.Handlers{}, obs.HealthHandlers{}, nil, err
	}

	properties := memory.NewPropertyRepository(store)
	bookings := memory.NewBookingRepository(store)
	statistics := memory.NewStatisticsRepository(store, logger)
	navigation := memory.NewNavigationRepository(store, logger)
	credentials := memory.NewCredentialsRepository(store)

	cleanup := func() {}
	var events *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		events, err = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, nil)
		if err != nil {
			logger.Warn("kafka producer unavailable, events disabled", "error", err)
			events = nil
		} else {
			cleanup = func() {
				if err := events.Close(); err != nil {
					logger.Warn("kafka producer close failed", "error", err)
				}
			}
		}
	}

	geocoder := &geo.Geocoder{
		Client: &http.Client{Timeout: cfg.GeocodeTimeout},
		APIKey: cfg.YandexGeocoderAPIKey,
		Logger: logger,
	}

	authService := &authsvc.Service{Credentials: credentials, Logger: logger}
	bookingService := &bookingsvc.Service{
		Bookings:   bookings,
		Properties: properties,
		Logger:     logger,
	}
	backupService := &backupsvc.Service{
		Store:      store,
		Properties: properties,
		Bookings:   bookings,
		Statistics: statistics,
		Navigation: navigation,
		Logger:     logger,
	}
	if events != nil {
		bookingService.Events = events
		backupService.Events = events
	}
	if cfg.SimulatedLatency {
		authService.LoginLatency = authsvc.DefaultLoginLatency
		authService.UpdateLatency = authsvc.DefaultUpdateLatency
		bookingService.Latency = bookingsvc.DefaultLatency
		backupService.Latency = backupsvc.DefaultImportLatency
	}

	limiter := ginserver.NewRateLimiter(cfg.BookingRatePerSecond, cfg.BookingRateBurst)

	handlers := ginserver.Handlers{
		Properties: &ginserver.PropertyHandler{Properties: properties, Geocoder: geocoder, Logger: logger},
		Bookings:   &ginserver.BookingHandler{Service: bookingService, Bookings: bookings},
		Statistics: &ginserver.StatsHandler{Statistics: statistics},
		Content:    &ginserver.ContentHandler{Navigation: navigation},
		Auth:       &ginserver.AuthHandler{Service: authService},
		Data:       &ginserver.DataHandler{Service: backupService},
		Geo: &ginserver.GeoHandler{
			Geocoder:         geocoder,
			APIKeyConfigured: cfg.YandexGeocoderAPIKey != "",
		},
		AdminGuard:     ginserver.AdminGuard(authService),
		BookingLimiter: limiter.Middleware(),
	}
	return handlers, obs.HealthHandlers{Ready: store.Ready}, cleanup, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
