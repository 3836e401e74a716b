package decay

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config controls the decay simulation dimensions and seeding.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`

	// SpawnDensity is the fraction of cells Reset starts at a non-dead
	// state, split evenly across the four live tiers.
	SpawnDensity float64 `json:"spawn_density"`

	// Workers selects the stepping mode: 0 runs the serial stepper, -1 one
	// worker per CPU, any positive value that many row bands.
	Workers int `json:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        256,
		Height:       256,
		Seed:         1337,
		SpawnDensity: 0.12,
		Workers:      0,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spawn_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SpawnDensity = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= -1 {
			c.Workers = parsed
		}
	}
	return c
}

// LoadConfig reads a JSON config file, falling back to defaults for any
// field the file omits.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "read config %s", path)
	}
	if err = json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", path)
	}
	return c, nil
}
