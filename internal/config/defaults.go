package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/neonsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			DBPath: "~/.neonsnake/scores.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Head:   "#ccffcc",
			Body:   "#39ff14",
			Food:   "#ff00ff",
			Border: "#39ff14",
			Text:   "#ffffff",
			Dim:    "#6b7280",
			Alert:  "#ff00ff",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
