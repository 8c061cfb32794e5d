package config

import (
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/throttle"
)

// Config holds the runtime settings for rendering and previewing a wheel.
type Config struct {
	Radius         int
	ThrottleWindow time.Duration
	TickLines      bool
	LayoutPath     string
	LogEvents      bool
}

// Default returns a Config with the built-in values.
func Default() Config {
	return Config{
		Radius:         domain.DefaultRadius,
		ThrottleWindow: throttle.DefaultWindow,
		TickLines:      false,
		LayoutPath:     "",
		LogEvents:      false,
	}
}

// Load reads configuration from TIMEWHEEL_* environment variables,
// falling back to defaults for unset or invalid values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("TIMEWHEEL_RADIUS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Radius = n
		}
	}
	if v := os.Getenv("TIMEWHEEL_THROTTLE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ThrottleWindow = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("TIMEWHEEL_TICK_LINES"); v != "" {
		cfg.TickLines, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TIMEWHEEL_LAYOUT"); v != "" {
		cfg.LayoutPath = v
	}
	if v := os.Getenv("TIMEWHEEL_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}

	return cfg
}
