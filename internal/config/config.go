// This file is part of poifetch (https://github.com/riskatlas/poifetch).
// Copyright (C) 2025 the poifetch authors (https://github.com/riskatlas).
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, version 3 of the License.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License for more
// details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/riskatlas/poifetch/pkg/overpass"
)

// Config holds the CLI-level settings. The fetch pipeline itself reads no
// configuration and no environment; everything here is resolved before it
// runs.
type Config struct {
	Endpoint     string        `mapstructure:"endpoint"`
	Timeout      time.Duration `mapstructure:"timeout"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	Format       string        `mapstructure:"format"`
	LogLevel     string        `mapstructure:"log_level"`
}

// Load reads defaults, an optional config file and POIFETCH_* environment
// variables, in that order of precedence. An empty path means the default
// poifetch.yaml discovery; a non-empty path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("endpoint", overpass.DefaultEndpoint)
	v.SetDefault("timeout", overpass.DefaultTimeout)
	v.SetDefault("batch_timeout", overpass.DefaultBatchTimeout)
	v.SetDefault("max_attempts", overpass.DefaultMaxAttempts)
	v.SetDefault("format", "geojson")
	v.SetDefault("log_level", "info")

	// Config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("poifetch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/poifetch")
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: POIFETCH_MAX_ATTEMPTS → max_attempts
	v.SetEnvPrefix("POIFETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all fields are present and sane, collecting every
// problem instead of stopping at the first.
func (c *Config) Validate() error {
	var errs []string

	if c.Endpoint == "" {
		errs = append(errs, "endpoint is required")
	}
	if c.Timeout <= 0 {
		errs = append(errs, "timeout must be positive")
	}
	if c.BatchTimeout <= 0 {
		errs = append(errs, "batch_timeout must be positive")
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Sprintf("max_attempts must be at least 1, got %d", c.MaxAttempts))
	}
	switch c.Format {
	case "geojson", "csv", "kml":
	default:
		errs = append(errs, fmt.Sprintf("format must be geojson, csv or kml, got %q", c.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
