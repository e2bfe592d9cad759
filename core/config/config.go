package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config carries the timing facility toggles. The zero value is fully
// disabled; use Default for the usual starting point.
type Config struct {
	Enabled        bool `toml:"enabled"`
	Debug          bool `toml:"debug,omitempty"`
	MetricsEnabled bool `toml:"metrics_enabled,omitempty"`
}

func Default() Config {
	return Config{
		Enabled:        true,
		MetricsEnabled: true,
	}
}

func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
