// Package config holds the window layout constants and the runtime
// settings read from WHEEL_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

const (
	Size         = 720
	WindowWidth  = Size * 16 / 9
	WindowHeight = Size

	WheelRadius = Size / 3

	// Pointer triangle above the wheel
	PointerLength = Size * 6 / 100
	PointerHeight = Size * 375 / 10000
	PointerGap    = 10

	// Round spin button in the wheel's hub
	SpinButtonSize = 100

	// Select file button
	FileButtonWidth  = 120
	FileButtonHeight = 40
	FileButtonX      = 20
	FileButtonY      = 20

	LegendLineHeight = 25
)

// Config is the runtime configuration.
type Config struct {
	// Ticks per second; 100 gives the 10ms spin cadence.
	TPS int `envconfig:"TPS" default:"100"`
	// Zero seeds from the clock.
	Seed           uint64 `envconfig:"SEED" default:"0"`
	RollbackPolicy string `envconfig:"ROLLBACK_POLICY" default:"legacy"`

	LabelsFile  string `envconfig:"LABELS_FILE"`
	PaletteFile string `envconfig:"PALETTE_FILE"`

	Sound      bool    `envconfig:"SOUND" default:"true"`
	Volume     float64 `envconfig:"VOLUME" default:"0"`
	ClickSound string  `envconfig:"CLICK_SOUND"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// PNG written after every finished spin when set.
	Snapshot string `envconfig:"SNAPSHOT"`

	Policy wheel.RollbackPolicy `ignored:"true"`
}

// Load reads WHEEL_* variables and validates them.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("wheel", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and resolves the rollback policy.
func (c *Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("WHEEL_TPS must be > 0, got %d", c.TPS)
	}
	if c.Volume < -10 || c.Volume > 2 {
		return fmt.Errorf("WHEEL_VOLUME must be within [-10, 2], got %v", c.Volume)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("WHEEL_LOG_LEVEL: %w", err)
	}
	p, err := wheel.ParseRollbackPolicy(c.RollbackPolicy)
	if err != nil {
		return fmt.Errorf("WHEEL_ROLLBACK_POLICY: %w", err)
	}
	c.Policy = p
	return nil
}

// TickInterval is the wall-clock time between two ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// SeedOrClock returns the configured seed, or one derived from now.
func (c *Config) SeedOrClock() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
