package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/StarNumber12046/rocket/internal/command"
	"github.com/StarNumber12046/rocket/internal/config"
	"github.com/StarNumber12046/rocket/internal/ipc"
	"github.com/StarNumber12046/rocket/internal/lock"
	"github.com/StarNumber12046/rocket/internal/log"
	"github.com/StarNumber12046/rocket/internal/tui/dialog"
)

var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(runCLI(os.Args[1:]))
}

func runCLI(cliArgs []string) int {
	if len(cliArgs) < 1 {
		printUsage()
		return 1
	}

	cmd := cliArgs[0]
	args := cliArgs[1:]

	switch cmd {
	case "serve":
		return runServe(args)
	case "dialog":
		return runDialog(args)
	case "run":
		return runLine(args)
	case "check":
		return runCheck(args)
	case "commands":
		return runCommands(args)
	case "version", "--version":
		return runVersion(args)
	case "help", "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Print(`rocket - gesture-driven app launcher command language

Usage:
  rocket <command> [flags]

Commands:
  serve      Run startup commands and serve the IPC API until interrupted
  dialog     Interactive command prompt
  run        Run one command line and print its output
  check      Validate the configured startup commands
  commands   List built-in commands
  version    Show version information

Flags:
  --config   Path to config file or directory (default: discovered)

Examples:
  rocket run 'launch "Text Editor"'
  rocket run on Swipe:Up:3 show
  rocket check --config ~/.config/rocket
`)
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

func runVersion(args []string) int {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "Output version metadata as JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Usage: rocket version [--json]")
		return 1
	}

	info := currentVersionInfo()

	if *jsonOut {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render version JSON: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	fmt.Printf("rocket %s\n", info.Version)
	fmt.Printf("commit: %s\n", info.Commit)
	fmt.Printf("built_at: %s\n", info.BuildTime)
	return 0
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:   strings.TrimSpace(version),
		Commit:    "unknown",
		BuildTime: "unknown",
	}
	if info.Version == "" {
		info.Version = "0.0.0-dev"
	}

	commit := strings.TrimSpace(gitCommit)
	if commit == "" || commit == "unknown" {
		commit = strings.TrimSpace(readBuildSetting("vcs.revision"))
	}
	if commit != "" {
		if len(commit) > 12 {
			commit = commit[:12]
		}
		info.Commit = commit
	}

	built := strings.TrimSpace(buildDate)
	if built == "" || built == "unknown" {
		built = strings.TrimSpace(readBuildSetting("vcs.time"))
	}
	if t, err := time.Parse(time.RFC3339Nano, built); err == nil {
		info.BuildTime = t.UTC().Format(time.RFC3339)
	}
	return info
}

func readBuildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

// loadConfig loads the config at path, or a discovered one when path is
// empty. With required false a missing config falls back to Defaults.
func loadConfig(path string, required bool) (*config.Config, error) {
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			if required {
				return nil, err
			}
			return config.Defaults(), nil
		}
		path = discovered
	}
	return config.Load(path)
}

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file or directory")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.SetupWriter(cfg.Service.LogLevel, cfg.Service.LogFormat, os.Stderr)
	logger := log.WithComponent("main")
	logger.Info("rocket starting", "version", version, "config", cfg.SourcePath)

	lockPath := filepath.Join(filepath.Dir(cfg.History.Path), "rocket.lock")
	pidLock, err := lock.AcquirePIDLock(lockPath)
	if err != nil {
		logger.Error("failed to acquire PID lock (another instance may be running)", "path", lockPath, "error", err)
		return 1
	}
	defer pidLock.Release()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s, err := newSession(ctx, cfg)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return 1
	}
	defer s.Close()

	s.runStartup(ctx)

	if !cfg.IPC.Enabled {
		logger.Warn("ipc disabled; waiting for signal with no way to send commands")
		<-ctx.Done()
		logger.Info("rocket stopped")
		return 0
	}

	server := ipc.New(ipc.Config{
		Listen:         cfg.IPC.Listen,
		APIKey:         cfg.IPC.APIKey,
		StrictGestures: cfg.Gestures.StrictFingers,
	}, s.dispatcher, s.launcher, s.historyLog(), s.hub, log.WithComponent("ipc"))

	if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("ipc server failed", "error", err)
		return 1
	}
	logger.Info("rocket stopped")
	return 0
}

func runDialog(args []string) int {
	fs := flag.NewFlagSet("dialog", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file or directory")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// The terminal belongs to the dialog, so logs go to a file.
	logOut := io.Discard
	if cfg.History.Enabled {
		logPath := filepath.Join(filepath.Dir(cfg.History.Path), "dialog.log")
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
			if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				defer f.Close()
				logOut = f
			}
		}
	}
	log.SetupWriter(cfg.Service.LogLevel, cfg.Service.LogFormat, logOut)

	ctx := context.Background()
	s, err := newSession(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}
	defer s.Close()

	s.runStartup(ctx)

	evCh, unsubscribe := s.hub.Subscribe()
	defer unsubscribe()

	opts := []dialog.Option{dialog.WithEvents(evCh)}
	if s.history != nil {
		opts = append(opts, dialog.WithRecorder(s.history))
		if recent, err := s.history.Recent(ctx, 100); err == nil {
			lines := make([]string, 0, len(recent))
			for i := len(recent) - 1; i >= 0; i-- {
				lines = append(lines, recent[i].Line)
			}
			opts = append(opts, dialog.WithRecall(lines))
		}
	}

	m := dialog.New(ctx, s.dispatcher, s.launcher, opts...)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Dialog error: %v\n", err)
		return 1
	}
	return 0
}

func runLine(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file or directory")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: rocket run [--config PATH] <command line>")
		return 1
	}
	line := strings.Join(fs.Args(), " ")

	cfg, err := loadConfig(*configPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	log.SetupWriter(cfg.Service.LogLevel, cfg.Service.LogFormat, os.Stderr)

	// One-shot runs never touch the history database.
	cfg.History.Enabled = false
	ctx := context.Background()
	s, err := newSession(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}
	defer s.Close()

	out, err := s.dispatcher.RunNow(s.launcher, line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if out != "" {
		fmt.Print(out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Println()
		}
	}
	return 0
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file or directory")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration invalid: %v\n", err)
		return 1
	}
	log.SetupWriter("error", cfg.Service.LogFormat, os.Stderr)

	d := newDispatcher(cfg)
	l := newLauncher(cfg, nil)

	failed := 0
	for i, line := range cfg.Commands {
		if _, err := d.CompileLater(l, line); err != nil {
			failed++
			fmt.Printf("FAIL commands[%d] %q: %v\n", i, line, err)
			continue
		}
		fmt.Printf("ok   commands[%d] %q\n", i, line)
	}

	fmt.Printf("apps: %d, commands: %d\n", len(cfg.Apps), len(cfg.Commands))
	fmt.Printf("fingerprint: %s\n", config.Fingerprint(cfg))
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d command(s) failed to compile\n", failed)
		return 1
	}
	return 0
}

func runCommands(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "Usage: rocket commands")
		return 1
	}
	log.SetupWriter("error", "text", os.Stderr)

	out, err := command.Default().RunNow(nil, "help")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Print(out)
	return 0
}
