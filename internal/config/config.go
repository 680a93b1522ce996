package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"coworking/internal/domain"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultTimeZone        = "UTC"
	defaultOpenTime        = "09:00"
	defaultCloseTime       = "18:00"
	defaultBufferMinutes   = "15"
	defaultMinAdvanceHours = "1"
	defaultMaxAdvanceDays  = "90"
	defaultMinDurationMin  = "30"
	defaultMaxDurationMin  = "480"
	defaultSameDayCutoff   = "17:00"
	defaultWeekendAllowed  = "false"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseDSN string
	TimeZone    string
	LocationID  string

	// DefaultRules seeds the availability rule set for locations without a
	// persisted rules row.
	DefaultRules domain.LocationRules
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppEnv:      strings.ToLower(envDefault("APP_ENV", "development")),
		HTTPAddr:    envDefault("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDSN: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		TimeZone:    envDefault("BOOKING_TIMEZONE", defaultTimeZone),
		LocationID:  envDefault("LOCATION_ID", "main"),
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var err error
	cfg.DefaultRules = domain.LocationRules{
		OpenTime:       envDefault("RULES_OPEN_TIME", defaultOpenTime),
		CloseTime:      envDefault("RULES_CLOSE_TIME", defaultCloseTime),
		SameDayCutoff:  envDefault("RULES_SAME_DAY_CUTOFF", defaultSameDayCutoff),
		PeakStart:      os.Getenv("RULES_PEAK_START"),
		PeakEnd:        os.Getenv("RULES_PEAK_END"),
		PeakMultiplier: 1.0,
	}
	if cfg.DefaultRules.BufferMinutes, err = envInt("RULES_BUFFER_MINUTES", defaultBufferMinutes); err != nil {
		return nil, err
	}
	if cfg.DefaultRules.MinAdvanceHours, err = envInt("RULES_MIN_ADVANCE_HOURS", defaultMinAdvanceHours); err != nil {
		return nil, err
	}
	if cfg.DefaultRules.MaxAdvanceDays, err = envInt("RULES_MAX_ADVANCE_DAYS", defaultMaxAdvanceDays); err != nil {
		return nil, err
	}
	if cfg.DefaultRules.MinDurationMinutes, err = envInt("RULES_MIN_DURATION_MINUTES", defaultMinDurationMin); err != nil {
		return nil, err
	}
	if cfg.DefaultRules.MaxDurationMinutes, err = envInt("RULES_MAX_DURATION_MINUTES", defaultMaxDurationMin); err != nil {
		return nil, err
	}
	if cfg.DefaultRules.WeekendBookingAllowed, err = envBool("RULES_WEEKEND_BOOKING", defaultWeekendAllowed); err != nil {
		return nil, err
	}
	if raw := os.Getenv("RULES_PEAK_MULTIPLIER"); raw != "" {
		if cfg.DefaultRules.PeakMultiplier, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("RULES_PEAK_MULTIPLIER: %w", err)
		}
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key, fallback string) (int, error) {
	v, err := strconv.Atoi(envDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envBool(key, fallback string) (bool, error) {
	v, err := strconv.ParseBool(envDefault(key, fallback))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
