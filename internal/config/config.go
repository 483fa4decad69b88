// Package config loads the server configuration from defaults, an optional
// config file, CANVAS_* environment variables and command-line flags.
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
)

// EnvPrefix is prepended to environment overrides, e.g. CANVAS_LISTEN.
const EnvPrefix = "CANVAS"

// Config is the validated server configuration.
type Config struct {
	Listen   string          `mapstructure:"listen"`
	DBPath   string          `mapstructure:"db_path"`
	Dev      bool            `mapstructure:"dev"`
	Verbose  bool            `mapstructure:"verbose"`
	Theme    string          `mapstructure:"theme"`
	ShowGrid bool            `mapstructure:"show_grid"`
	PNGFont  string          `mapstructure:"png_font"`
	Viewport canvas.Viewport `mapstructure:"viewport"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen", ":8080")
	v.SetDefault("db_path", "strategy_canvas.db")
	v.SetDefault("dev", false)
	v.SetDefault("verbose", false)
	v.SetDefault("theme", string(chart.Light))
	v.SetDefault("show_grid", true)
	v.SetDefault("png_font", "")
	v.SetDefault("viewport.width", canvas.DefaultViewport.Width)
	v.SetDefault("viewport.height", canvas.DefaultViewport.Height)
	v.SetDefault("viewport.margin", canvas.DefaultViewport.Margin)
}

// New returns a viper instance with defaults and environment binding.
// configFile is optional; json, yaml and toml are accepted.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the listen address, theme and viewport.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("listen address %q: %w", c.Listen, err)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if _, err := chart.ParseTheme(c.Theme); err != nil {
		return err
	}
	return c.Viewport.Validate()
}

// ChartTheme returns the validated theme.
func (c *Config) ChartTheme() chart.Theme {
	return chart.Theme(c.Theme)
}
