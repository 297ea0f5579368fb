// Package config provides YAML-based configuration loading for the
// neon-snake platform: storage location, SSH server, logging and colours.
// Board size and pacing are game constants and deliberately not configurable.
package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.neonsnake/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr for serve, discard for play
}

// ThemeConfig holds hex colours for each screen role.
type ThemeConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
	Dim    string `yaml:"dim"`
	Alert  string `yaml:"alert"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the configuration for values the platform cannot use.
func (c Config) Validate() error {
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path must not be empty")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: server.address must not be empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}

	colors := map[string]string{
		"head":   c.Theme.Head,
		"body":   c.Theme.Body,
		"food":   c.Theme.Food,
		"border": c.Theme.Border,
		"text":   c.Theme.Text,
		"dim":    c.Theme.Dim,
		"alert":  c.Theme.Alert,
	}
	for name, v := range colors {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("config: theme.%s %q is not a #rrggbb colour", name, v)
		}
	}
	return nil
}
