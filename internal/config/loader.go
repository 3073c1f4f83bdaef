package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the built-in configuration.
// The embedded YAML is authoritative; the hardcoded defaults are used only
// if it fails to parse. The result is always validated.
func Load() (DodgeConfig, error) {
	cfg, err := Parse(defaultDodgeYAML)
	if err != nil {
		cfg = DefaultDodgeConfig() // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the hardcoded defaults, so
// omitted keys keep their default values.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, nil
}
