package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 150, cfg.Radius)
	assert.Equal(t, 200*time.Millisecond, cfg.ThrottleWindow)
	assert.False(t, cfg.TickLines)
	assert.False(t, cfg.LogEvents)
	assert.Empty(t, cfg.LayoutPath)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TIMEWHEEL_RADIUS", "220")
	t.Setenv("TIMEWHEEL_THROTTLE_MS", "350")
	t.Setenv("TIMEWHEEL_TICK_LINES", "true")
	t.Setenv("TIMEWHEEL_LAYOUT", "/tmp/wheel.yaml")
	t.Setenv("TIMEWHEEL_LOG_EVENTS", "1")

	cfg := Load()
	assert.Equal(t, 220, cfg.Radius)
	assert.Equal(t, 350*time.Millisecond, cfg.ThrottleWindow)
	assert.True(t, cfg.TickLines)
	assert.Equal(t, "/tmp/wheel.yaml", cfg.LayoutPath)
	assert.True(t, cfg.LogEvents)
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	t.Setenv("TIMEWHEEL_RADIUS", "-5")
	t.Setenv("TIMEWHEEL_THROTTLE_MS", "soon")
	t.Setenv("TIMEWHEEL_TICK_LINES", "maybe")

	cfg := Load()
	assert.Equal(t, 150, cfg.Radius)
	assert.Equal(t, 200*time.Millisecond, cfg.ThrottleWindow)
	assert.False(t, cfg.TickLines)
}
