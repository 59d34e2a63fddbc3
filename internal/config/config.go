// Package config loads the controller's driver settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every environment variable name.
const Prefix = "MUDRA_"

// Config holds the driver settings. The gesture thresholds and the command
// cooldown are fixed constants in package gesture and are not configurable.
type Config struct {
	CameraID        int    `env:"CAMERA_ID"         envDefault:"0"`
	PluginDir       string `env:"PLUGIN_DIR"        envDefault:"${HOME}/.mudra/plugins" envExpand:"true"`
	Injector        string `env:"INJECTOR"          envDefault:"robotgo"`
	ShowWindow      bool   `env:"SHOW_WINDOW"       envDefault:"true"`
	Tray            bool   `env:"TRAY"              envDefault:"false"`
	LogLevel        string `env:"LOG_LEVEL"         envDefault:"info"`
	PluginTimeoutMs int    `env:"PLUGIN_TIMEOUT_MS" envDefault:"5000"`
}

// Load parses MUDRA_* variables into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env cannot check by type alone.
func (c *Config) Validate() error {
	switch c.Injector {
	case "robotgo", "plugin", "dry-run":
	default:
		return fmt.Errorf("%sINJECTOR: unknown injector %q", Prefix, c.Injector)
	}
	if c.CameraID < 0 {
		return fmt.Errorf("%sCAMERA_ID: must not be negative, got %d", Prefix, c.CameraID)
	}
	if c.PluginTimeoutMs <= 0 {
		return fmt.Errorf("%sPLUGIN_TIMEOUT_MS: must be positive, got %d", Prefix, c.PluginTimeoutMs)
	}
	return nil
}

// PluginTimeout returns the plugin timeout as a duration.
func (c *Config) PluginTimeout() time.Duration {
	return time.Duration(c.PluginTimeoutMs) * time.Millisecond
}
