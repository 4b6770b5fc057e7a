// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names for configuration overrides.
const (
	EnvSeed           = "STARDRIFT_SEED"
	EnvViewportWidth  = "STARDRIFT_VIEWPORT_WIDTH"
	EnvViewportHeight = "STARDRIFT_VIEWPORT_HEIGHT"
	EnvNormalTopSpeed = "STARDRIFT_NORMAL_TOP_SPEED"
	EnvBoostTopSpeed  = "STARDRIFT_BOOST_TOP_SPEED"
	EnvStarCount      = "STARDRIFT_STAR_COUNT"
)

// LoadConfigFromEnv returns the default configuration with any recognized
// STARDRIFT_* environment overrides applied. Unset variables leave the
// defaults untouched; malformed values produce an error rather than a
// silent fallback.
func LoadConfigFromEnv() (*GameConfig, error) {
	config := DefaultConfig()

	if err := overrideUint(EnvSeed, &config.Seed); err != nil {
		return nil, err
	}
	if err := overrideFloat(EnvViewportWidth, &config.ViewportWidth); err != nil {
		return nil, err
	}
	if err := overrideFloat(EnvViewportHeight, &config.ViewportHeight); err != nil {
		return nil, err
	}
	if err := overrideFloat(EnvNormalTopSpeed, &config.Ship.NormalTopSpeed); err != nil {
		return nil, err
	}
	if err := overrideFloat(EnvBoostTopSpeed, &config.Ship.BoostTopSpeed); err != nil {
		return nil, err
	}
	if err := overrideInt(EnvStarCount, &config.Starfield.Count); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// validateConfig rejects configurations that would break tick invariants.
func validateConfig(c *GameConfig) error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport dimensions must be positive: %gx%g", c.ViewportWidth, c.ViewportHeight)
	}
	if c.Ship.NormalTopSpeed <= 0 {
		return fmt.Errorf("normal top speed must be positive: %g", c.Ship.NormalTopSpeed)
	}
	if c.Starfield.Count < 0 {
		return fmt.Errorf("star count must be non-negative: %d", c.Starfield.Count)
	}
	return nil
}

func overrideFloat(name string, target *float64) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	*target = value
	return nil
}

func overrideInt(name string, target *int) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	*target = value
	return nil
}

func overrideUint(name string, target *uint64) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	*target = value
	return nil
}
