package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Window: WindowConfig{
			Title:  "Game",
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius: 10,
			Speed:  5,
		},
		Hazards: HazardsConfig{
			Count:  10,
			Radius: 15,
			Speed:  3,
		},
		Colors: ColorsConfig{
			Background: "black",
			Player:     "red",
			Hazard:     "blue",
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			KeyHoldMs: 500,
		},
	}
}

// DefaultYAML returns the embedded default configuration.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
