package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// envOverrides are the settings that can be replaced from the environment
// after the file is read. Unset variables leave the file value alone.
type envOverrides struct {
	LogLevel    string `env:"ROCKET_LOG_LEVEL"`
	LogFormat   string `env:"ROCKET_LOG_FORMAT"`
	IPCListen   string `env:"ROCKET_IPC_LISTEN"`
	IPCAPIKey   string `env:"ROCKET_IPC_API_KEY"`
	HistoryPath string `env:"ROCKET_HISTORY_PATH"`
}

// Load reads and parses configuration from a file. A directory is accepted if
// it contains config.yaml.
func Load(configPath string) (*Config, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %q: %w", configPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %s\n"+
			"Hint: Check the path or run with --config flag", absPath)
	}
	if info.IsDir() {
		absPath = filepath.Join(absPath, "config.yaml")
		if _, err := os.Stat(absPath); err != nil {
			return nil, fmt.Errorf("directory provided but config.yaml not found: %s", absPath)
		}
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	cfg, err := Parse(data, nil)
	if err != nil {
		return nil, err
	}
	cfg.SourcePath = absPath
	return cfg, nil
}

// Parse decodes YAML over Defaults, applies environment overrides and
// validates the result. environ replaces the process environment when non-nil.
func Parse(data []byte, environ map[string]string) (*Config, error) {
	lookup := os.LookupEnv
	if environ != nil {
		lookup = func(key string) (string, bool) {
			v, ok := environ[key]
			return v, ok
		}
	}

	cfg := Defaults()
	if err := yaml.Unmarshal([]byte(interpolateEnv(string(data), lookup)), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := applyEnvOverrides(cfg, environ); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config, environ map[string]string) error {
	var raw envOverrides
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&raw, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if raw.LogLevel != "" {
		cfg.Service.LogLevel = raw.LogLevel
	}
	if raw.LogFormat != "" {
		cfg.Service.LogFormat = raw.LogFormat
	}
	if raw.IPCListen != "" {
		cfg.IPC.Listen = raw.IPCListen
	}
	if raw.IPCAPIKey != "" {
		cfg.IPC.APIKey = raw.IPCAPIKey
	}
	if raw.HistoryPath != "" {
		cfg.History.Path = raw.HistoryPath
	}
	return nil
}

// interpolateEnv replaces ${VAR} with environment variable values.
// Undefined variables are left as-is (not expanded).
func interpolateEnv(input string, lookup func(string) (string, bool)) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value, exists := lookup(varName); exists {
			return value
		}
		return match
	})
}

// validate performs basic validation on the configuration.
func validate(cfg *Config) error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(cfg.Service.LogLevel)] {
		return fmt.Errorf("service.log_level must be one of: debug, info, warn, error (got %q)", cfg.Service.LogLevel)
	}
	if cfg.Service.LogFormat != "json" && cfg.Service.LogFormat != "text" {
		return fmt.Errorf("service.log_format must be json or text (got %q)", cfg.Service.LogFormat)
	}

	names := make(map[string]bool, len(cfg.Apps))
	for i, app := range cfg.Apps {
		if app.Name == "" {
			return fmt.Errorf("apps[%d].name is required", i)
		}
		if app.Path == "" {
			return fmt.Errorf("apps[%d] (%s): path is required", i, app.Name)
		}
		if names[app.Name] {
			return fmt.Errorf("apps[%d]: duplicate app name %q", i, app.Name)
		}
		names[app.Name] = true
	}

	for i, line := range cfg.Commands {
		if strings.TrimSpace(line) == "" {
			return fmt.Errorf("commands[%d] is empty", i)
		}
	}

	if cfg.IPC.Enabled {
		if cfg.IPC.Listen == "" {
			return errors.New("ipc.listen is required when ipc is enabled")
		}
		if cfg.IPC.APIKey == "" {
			return errors.New("ipc.api_key is required when ipc is enabled")
		}
		if matches := envVarPattern.FindStringSubmatch(cfg.IPC.APIKey); len(matches) > 1 {
			return fmt.Errorf("ipc.api_key: environment variable ${%s} is not set", matches[1])
		}
	}

	if cfg.History.Enabled {
		if cfg.History.Path == "" {
			return errors.New("history.path is required when history is enabled")
		}
		if cfg.History.Retention < 0 {
			return fmt.Errorf("history.retention must not be negative (got %s)", cfg.History.Retention)
		}
	}

	return nil
}

// Discover finds a config file by checking standard locations.
// Priority order: $ROCKET_CONFIG, ~/.config/rocket/config.yaml,
// /etc/rocket/config.yaml, ./config.yaml.
func Discover() (string, error) {
	candidates := make([]string, 0, 4)
	if p := os.Getenv("ROCKET_CONFIG"); p != "" {
		candidates = append(candidates, p)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, ".config", "rocket", "config.yaml"))
	}
	candidates = append(candidates, "/etc/rocket/config.yaml", "./config.yaml")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no config found (checked: $ROCKET_CONFIG, ~/.config/rocket/config.yaml, /etc/rocket/config.yaml, ./config.yaml)")
}
