package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from
// environment variables. Every field has a usable default; the service
// starts with no environment at all.
type Config struct {
	Env      string
	HTTPAddr string
	DataDir  string

	YandexGeocoderAPIKey string
	GeocodeTimeout       time.Duration

	KafkaBrokers     []string
	KafkaTopicPrefix string

	// SimulatedLatency toggles the artificial pauses shown to users
	// before login, booking and import complete. They exist purely to
	// surface a loading state and carry no retry semantics.
	SimulatedLatency bool

	BookingRatePerSecond float64
	BookingRateBurst     int
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:                  getEnv("APP_ENV", "dev"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		DataDir:              getEnv("DATA_DIR", "data"),
		YandexGeocoderAPIKey: os.Getenv("YANDEX_GEOCODER_API_KEY"),
		KafkaTopicPrefix:     getEnv("KAFKA_TOPIC_PREFIX", ""),
	}

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		for _, raw := range strings.Split(brokers, ",") {
			if b := strings.TrimSpace(raw); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	timeout, err := parseDurationEnv("GEOCODE_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.GeocodeTimeout = timeout

	simulated, err := parseBoolEnv("SIMULATED_LATENCY", true)
	if err != nil {
		return Config{}, err
	}
	cfg.SimulatedLatency = simulated

	rps, err := parseFloatEnv("BOOKING_RATE_PER_SECOND", 1)
	if err != nil {
		return Config{}, err
	}
	cfg.BookingRatePerSecond = rps

	burst, err := parseIntEnv("BOOKING_RATE_BURST", 3)
	if err != nil {
		return Config{}, err
	}
	cfg.BookingRateBurst = burst

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}

func parseFloatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %w", key, err)
	}
	return f, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return n, nil
}
