// Package config holds the tool configuration: where the FTL daemon
// binary and its files live. Every path the tool touches is settable
// here so nothing is pinned to the shipped defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is where Load looks when no --config flag is given.
	DefaultPath = "/etc/ftlconf.yml"

	// DefaultFTLBinary is the daemon executable, resolved via PATH.
	DefaultFTLBinary = "pihole-FTL"

	// DefaultFTLConfigFile is the daemon's own config file, holding the
	// optional PIDFILE= entry.
	DefaultFTLConfigFile = "/etc/pihole/pihole-FTL.conf"

	// DefaultPIDFile is used when the daemon config names no PID file.
	DefaultPIDFile = "/run/pihole-FTL.pid"

	// DefaultWatchSchedule is the liveness probe interval for watch mode.
	DefaultWatchSchedule = "@every 30s"
)

// Config holds the application configuration
type Config struct {
	FTLBinary     string `yaml:"ftl_binary"`
	FTLConfigFile string `yaml:"ftl_config_file"`
	PIDFile       string `yaml:"pid_file"`
	WatchSchedule string `yaml:"watch_schedule"`
}

// Default returns a Config populated with the shipped defaults.
func Default() *Config {
	return &Config{
		FTLBinary:     DefaultFTLBinary,
		FTLConfigFile: DefaultFTLConfigFile,
		PIDFile:       DefaultPIDFile,
		WatchSchedule: DefaultWatchSchedule,
	}
}

// Load reads the YAML configuration at path. A missing file at the
// default location yields the defaults; a missing file at an explicitly
// requested location is an error. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for fields set to the empty string,
// which yaml leaves behind for explicit empty values.
func (c *Config) fillDefaults() {
	if c.FTLBinary == "" {
		c.FTLBinary = DefaultFTLBinary
	}
	if c.FTLConfigFile == "" {
		c.FTLConfigFile = DefaultFTLConfigFile
	}
	if c.PIDFile == "" {
		c.PIDFile = DefaultPIDFile
	}
	if c.WatchSchedule == "" {
		c.WatchSchedule = DefaultWatchSchedule
	}
}
