package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
		checkFn func(t *testing.T, cfg *Config)
	}{
		{
			name: "minimal valid config",
			yaml: `
apps:
  - name: Notes
    path: /opt/bin/notes
commands:
  - on Swipe:Up:3 show
`,
			checkFn: func(t *testing.T, cfg *Config) {
				if len(cfg.Apps) != 1 || cfg.Apps[0].Path != "/opt/bin/notes" {
					t.Errorf("apps not parsed: %+v", cfg.Apps)
				}
				if len(cfg.Commands) != 1 || cfg.Commands[0] != "on Swipe:Up:3 show" {
					t.Errorf("commands not parsed: %v", cfg.Commands)
				}
				if cfg.Service.Name != "rocket" || cfg.Service.LogLevel != "info" {
					t.Errorf("service defaults not applied: %+v", cfg.Service)
				}
				if cfg.History.Retention != 30*24*time.Hour {
					t.Errorf("history.retention = %s, want default", cfg.History.Retention)
				}
			},
		},
		{
			name: "durations and gestures",
			yaml: `
gestures:
  strict_fingers: true
history:
  enabled: true
  path: /tmp/h.db
  retention: 48h
`,
			checkFn: func(t *testing.T, cfg *Config) {
				if !cfg.Gestures.StrictFingers {
					t.Error("gestures.strict_fingers not parsed")
				}
				if cfg.History.Retention != 48*time.Hour {
					t.Errorf("history.retention = %s, want 48h", cfg.History.Retention)
				}
			},
		},
		{
			name: "env interpolation",
			yaml: `
ipc:
  enabled: true
  api_key: ${TEST_ROCKET_KEY}
`,
			env: map[string]string{"TEST_ROCKET_KEY": "sekrit"},
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.IPC.APIKey != "sekrit" {
					t.Errorf("ipc.api_key = %q, want interpolated", cfg.IPC.APIKey)
				}
			},
		},
		{
			name: "unresolved api key",
			yaml: `
ipc:
  enabled: true
  api_key: ${TEST_ROCKET_MISSING}
`,
			env:     map[string]string{},
			wantErr: "${TEST_ROCKET_MISSING} is not set",
		},
		{
			name: "env overrides file",
			yaml: `
service:
  log_level: debug
ipc:
  listen: 127.0.0.1:9000
`,
			env: map[string]string{
				"ROCKET_LOG_LEVEL":    "warn",
				"ROCKET_IPC_LISTEN":   "127.0.0.1:9100",
				"ROCKET_HISTORY_PATH": "/var/lib/rocket/history.db",
			},
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Service.LogLevel != "warn" {
					t.Errorf("log_level = %q, want env override", cfg.Service.LogLevel)
				}
				if cfg.IPC.Listen != "127.0.0.1:9100" {
					t.Errorf("ipc.listen = %q, want env override", cfg.IPC.Listen)
				}
				if cfg.History.Path != "/var/lib/rocket/history.db" {
					t.Errorf("history.path = %q, want env override", cfg.History.Path)
				}
			},
		},
		{
			name:    "invalid log level",
			yaml:    "service:\n  log_level: chatty\n",
			env:     map[string]string{},
			wantErr: "service.log_level",
		},
		{
			name:    "invalid log format",
			yaml:    "service:\n  log_format: xml\n",
			env:     map[string]string{},
			wantErr: "service.log_format",
		},
		{
			name:    "app without path",
			yaml:    "apps:\n  - name: Notes\n",
			env:     map[string]string{},
			wantErr: "apps[0] (Notes): path is required",
		},
		{
			name: "duplicate app",
			yaml: `
apps:
  - {name: Notes, path: /a}
  - {name: Notes, path: /b}
`,
			env:     map[string]string{},
			wantErr: `duplicate app name "Notes"`,
		},
		{
			name:    "blank command",
			yaml:    "commands:\n  - \"  \"\n",
			env:     map[string]string{},
			wantErr: "commands[0] is empty",
		},
		{
			name:    "ipc without key",
			yaml:    "ipc:\n  enabled: true\n",
			env:     map[string]string{},
			wantErr: "ipc.api_key is required",
		},
		{
			name:    "malformed yaml",
			yaml:    "apps: [",
			env:     map[string]string{},
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := tt.env
			if environ == nil {
				environ = map[string]string{}
			}
			cfg, err := Parse([]byte(tt.yaml), environ)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if tt.checkFn != nil {
				tt.checkFn(t, cfg)
			}
		})
	}
}

func TestLoadFileAndDirectory(t *testing.T) {
	t.Setenv("ROCKET_LOG_LEVEL", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("apps:\n  - {name: Notes, path: /opt/bin/notes}\n"), 0600); err != nil {
		t.Fatal(err)
	}

	for _, arg := range []string{path, dir} {
		cfg, err := Load(arg)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", arg, err)
		}
		if cfg.SourcePath != path {
			t.Errorf("SourcePath = %q, want %q", cfg.SourcePath, path)
		}
		if len(cfg.Apps) != 1 {
			t.Errorf("Load(%q) apps = %d, want 1", arg, len(cfg.Apps))
		}
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "config.yaml not found") {
		t.Fatalf("Load(empty dir) error = %v", err)
	}
}

func TestDiscoverPrefersEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocket.yaml")
	if err := os.WriteFile(path, []byte("apps: []\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROCKET_CONFIG", path)

	got, err := Discover()
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if got != path {
		t.Fatalf("Discover() = %q, want %q", got, path)
	}
}
