package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/StarNumber12046/rocket/internal/command"
	"github.com/StarNumber12046/rocket/internal/config"
	"github.com/StarNumber12046/rocket/internal/events"
	"github.com/StarNumber12046/rocket/internal/history"
	"github.com/StarNumber12046/rocket/internal/ipc"
	"github.com/StarNumber12046/rocket/internal/launcher"
	"github.com/StarNumber12046/rocket/internal/log"
	"github.com/StarNumber12046/rocket/internal/storage"
)

// session is the set of long-lived objects shared by serve, dialog and run.
type session struct {
	cfg        *config.Config
	hub        *events.Hub
	launcher   *launcher.Local
	dispatcher *command.Dispatcher
	history    *history.Store
	db         *sql.DB
}

func newDispatcher(cfg *config.Config) *command.Dispatcher {
	return command.NewDispatcher(command.WithStrictGestures(cfg.Gestures.StrictFingers))
}

func newLauncher(cfg *config.Config, hub *events.Hub) *launcher.Local {
	apps := make([]launcher.App, 0, len(cfg.Apps))
	for _, a := range cfg.Apps {
		apps = append(apps, launcher.App{Name: a.Name, Path: a.Path})
	}
	return launcher.NewLocal(apps, hub)
}

func newSession(ctx context.Context, cfg *config.Config) (*session, error) {
	hub := events.NewHub(256)
	s := &session{
		cfg:        cfg,
		hub:        hub,
		launcher:   newLauncher(cfg, hub),
		dispatcher: newDispatcher(cfg),
	}

	if cfg.History.Enabled {
		db, err := storage.OpenSQLite(ctx, cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		s.db = db
		s.history = history.NewStore(db)

		if n, err := s.history.Prune(ctx, cfg.History.Retention); err != nil {
			log.WithComponent("history").Warn("prune failed", "error", err)
		} else if n > 0 {
			log.WithComponent("history").Info("pruned history", "removed", n, "retention", cfg.History.Retention.String())
		}
	}
	return s, nil
}

// runStartup runs the configured command lines in order. A failing line is
// logged and the rest still run.
func (s *session) runStartup(ctx context.Context) {
	logger := log.WithComponent("startup")
	for i, line := range s.cfg.Commands {
		out, err := s.history.Exec(ctx, history.SourceStartup, line, func(l string) (string, error) {
			return s.dispatcher.RunNow(s.launcher, l)
		})
		if err != nil {
			logger.Error("startup command failed", "index", i, "command", line, "error", err)
			continue
		}
		logger.Debug("startup command ran", "index", i, "command", line, "output", out)
	}
	logger.Info("startup commands complete", "count", len(s.cfg.Commands), "bindings", len(s.launcher.Actions()))
}

func (s *session) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// historyLog adapts the optional store to ipc.HistoryLog without leaking a
// typed nil into the interface.
func (s *session) historyLog() ipc.HistoryLog {
	if s.history == nil {
		return nil
	}
	return s.history
}
