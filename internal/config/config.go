// Package config provides YAML-based configuration loading and validation
// for the dodge simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// DodgeConfig contains all configuration for the simulation.
type DodgeConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Hazards HazardsConfig `yaml:"hazards"`
	Colors  ColorsConfig  `yaml:"colors"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
}

// WindowConfig defines the fixed world the scene lives in.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the controlled circle.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// HazardsConfig defines the bouncing circles.
type HazardsConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Initial speed on each axis
}

// ColorsConfig names the colors used for rendering.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Player     string `yaml:"player"`
	Hazard     string `yaml:"hazard"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// InputConfig defines how key events become held keys.
type InputConfig struct {
	KeyHoldMs int `yaml:"key_hold_ms"`
}

// Palette is the resolved set of render colors.
type Palette struct {
	Background core.Color
	Player     core.Color
	Hazard     core.Color
}

// Validate checks that the configuration describes a playable scene.
func (c DodgeConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player radius must be positive, got %v", c.Player.Radius))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed))
	}
	if 2*c.Player.Radius > c.Window.Width || 2*c.Player.Radius > c.Window.Height {
		errs = append(errs, fmt.Errorf("player diameter %v does not fit in the window", 2*c.Player.Radius))
	}
	if c.Hazards.Count < 0 {
		errs = append(errs, fmt.Errorf("hazard count must not be negative, got %d", c.Hazards.Count))
	}
	if c.Hazards.Radius <= 0 {
		errs = append(errs, fmt.Errorf("hazard radius must be positive, got %v", c.Hazards.Radius))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Input.KeyHoldMs < 0 {
		errs = append(errs, fmt.Errorf("key hold must not be negative, got %d", c.Input.KeyHoldMs))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Palette resolves the configured color names.
func (c DodgeConfig) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = core.ParseColor(c.Colors.Background); err != nil {
		return p, fmt.Errorf("background: %w", err)
	}
	if p.Player, err = core.ParseColor(c.Colors.Player); err != nil {
		return p, fmt.Errorf("player: %w", err)
	}
	if p.Hazard, err = core.ParseColor(c.Colors.Hazard); err != nil {
		return p, fmt.Errorf("hazard: %w", err)
	}
	return p, nil
}

// HoldFrames converts the key hold duration to whole frames, rounding up.
func (c DodgeConfig) HoldFrames() int {
	if c.Timing.TickRate <= 0 {
		return 1
	}
	frames := (c.Input.KeyHoldMs*c.Timing.TickRate + 999) / 1000
	return max(frames, 1)
}

// ToRuntime builds the runtime config for the given terminal size and seed.
func (c DodgeConfig) ToRuntime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		WorldW:   c.Window.Width,
		WorldH:   c.Window.Height,
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: c.Timing.TickRate,
		Seed:     seed,
	}
}
