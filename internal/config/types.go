package config

import "time"

// Config represents the complete rocket configuration.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Apps     []AppConfig    `yaml:"apps"`
	Commands []string       `yaml:"commands,omitempty"`
	Gestures GesturesConfig `yaml:"gestures,omitempty"`
	IPC      IPCConfig      `yaml:"ipc,omitempty"`
	History  HistoryConfig  `yaml:"history,omitempty"`

	// SourcePath is the absolute path the config was loaded from.
	SourcePath string `yaml:"-"`
}

// ServiceConfig defines core service settings.
type ServiceConfig struct {
	Name      string `yaml:"name"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// AppConfig is an app the launcher can switch to.
type AppConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// GesturesConfig controls how gesture specs are read by the on command.
type GesturesConfig struct {
	// StrictFingers rejects finger counts that are not non-negative integers
	// instead of reading them as 0.
	StrictFingers bool `yaml:"strict_fingers"`
}

// IPCConfig defines the local HTTP command server.
type IPCConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
	APIKey  string `yaml:"api_key"`
}

// HistoryConfig defines the command history log.
type HistoryConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Path      string        `yaml:"path"`
	Retention time.Duration `yaml:"retention"`
}

// Defaults returns a Config with sensible defaults.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:      "rocket",
			LogLevel:  "info",
			LogFormat: "json",
		},
		IPC: IPCConfig{
			Enabled: false,
			Listen:  "127.0.0.1:8765",
		},
		History: HistoryConfig{
			Enabled:   true,
			Path:      "./data/history.db",
			Retention: 30 * 24 * time.Hour,
		},
	}
}
