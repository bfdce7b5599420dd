// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves the CLI settings from defaults, an optional
// tzmap.yaml, TZMAP_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"m4o.io/tzmap"
	"m4o.io/tzmap/internal/legend"
	"m4o.io/tzmap/internal/output"
	"m4o.io/tzmap/internal/palette"
	"m4o.io/tzmap/model"
)

const (
	EnvPrefix = "TZMAP"
	FileName  = "tzmap"

	DefaultHeight = tzmap.DefaultHeight
)

// DefaultBackground is tzmap.DefaultBackground as a "#RRGGBB" string.
var DefaultBackground = palette.Hex(tzmap.DefaultBackground)

// Keys, also used as flag names with '_' replaced by '-'.
const (
	KeyHeight     = "height"
	KeyBackground = "background"
	KeyFillPolicy = "fill_policy"
	KeyColorKey   = "color_key"
	KeyImage      = "image"
	KeyLegend     = "legend"
	KeyCPU        = "cpu"
	KeyStrict     = "strict"
	KeyProgress   = "progress"
	KeyLogLevel   = "log_level"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of one tzmap run.
type Config struct {
	Height     int    `mapstructure:"height"`
	Background string `mapstructure:"background"`
	FillPolicy string `mapstructure:"fill_policy"`
	ColorKey   string `mapstructure:"color_key"`
	Image      string `mapstructure:"image"`
	Legend     string `mapstructure:"legend"`
	CPU        int    `mapstructure:"cpu"`
	Strict     bool   `mapstructure:"strict"`
	Progress   bool   `mapstructure:"progress"`
	LogLevel   string `mapstructure:"log_level"`

	// Resolved by Load.
	Policy          model.FillPolicy `mapstructure:"-"`
	Key             model.ColorKey   `mapstructure:"-"`
	BackgroundColor color.RGBA       `mapstructure:"-"`
	Level           slog.Level       `mapstructure:"-"`
}

// FlagName converts a configuration key into its flag name.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyHeight, DefaultHeight)
	v.SetDefault(KeyBackground, DefaultBackground)
	v.SetDefault(KeyFillPolicy, tzmap.DefaultFillPolicy.String())
	v.SetDefault(KeyColorKey, tzmap.DefaultColorKey.String())
	v.SetDefault(KeyImage, output.DefaultFile)
	v.SetDefault(KeyLegend, legend.DefaultFile)
	v.SetDefault(KeyCPU, tzmap.DefaultNCpu())
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyProgress, false)
	v.SetDefault(KeyLogLevel, slog.LevelWarn.String())
}

// Load resolves the configuration. When file is empty a tzmap.yaml (or any
// other format viper understands) is looked up in the working directory and
// silently skipped when absent. Flags that were set explicitly override
// everything else; flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
		}
	}

	if flags != nil {
		for _, key := range v.AllKeys() {
			if f := flags.Lookup(FlagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := c.resolve(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) resolve() error {
	var errs []error

	if c.Height < 1 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", c.Height))
	}

	if c.CPU < 1 {
		errs = append(errs, fmt.Errorf("cpu must be positive, got %d", c.CPU))
	}

	var err error

	if c.Policy, err = model.ParseFillPolicy(c.FillPolicy); err != nil {
		errs = append(errs, err)
	}

	if c.Key, err = model.ParseColorKey(c.ColorKey); err != nil {
		errs = append(errs, err)
	}

	if c.BackgroundColor, err = palette.ParseHex(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}

	if err = c.Level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	if _, err = output.EncoderFor(c.Image); err != nil {
		errs = append(errs, fmt.Errorf("image: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}
