package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"dailytrack/internal/domain"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Units UnitsConfig `toml:"units"`
}

// UnitsConfig selects the units used until the profile chooses its own.
type UnitsConfig struct {
	Weight *string `toml:"weight"`
	Height *string `toml:"height"`
}

// LoadFile reads a TOML config from the given path. A missing file is not an
// error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// UnitOptions applies the file's defaults to the built-in unit options.
func (f FileConfig) UnitOptions() domain.UnitOptions {
	o := domain.DefaultUnitOptions()
	weight, height := string(o.DefaultWeight), string(o.DefaultHeight)
	if f.Units.Weight != nil {
		weight = *f.Units.Weight
	}
	if f.Units.Height != nil {
		height = *f.Units.Height
	}
	return o.WithDefaults(weight, height)
}
