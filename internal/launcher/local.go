package launcher

import (
	"log/slog"
	"sync"
	"time"

	"github.com/StarNumber12046/rocket/internal/events"
	"github.com/StarNumber12046/rocket/internal/gesture"
	"github.com/StarNumber12046/rocket/internal/log"
)

// Local is an in-memory Launcher. It tracks which app is active and which
// gestures are bound but does not start processes or draw anything; the
// device integration observes it through the events hub.
//
// Methods copy apps in and out so callers never share state with Local.
type Local struct {
	mu      sync.Mutex
	apps    []App
	current string
	visible bool
	actions []Binding

	hub    *events.Hub
	logger *slog.Logger
	now    func() time.Time
}

var _ Launcher = (*Local)(nil)

// NewLocal creates a launcher over apps. hub may be nil.
func NewLocal(apps []App, hub *events.Hub) *Local {
	return &Local{
		apps:   append([]App(nil), apps...),
		hub:    hub,
		logger: log.WithComponent("launcher"),
		now:    time.Now,
	}
}

func (l *Local) GetApp(name string) *App {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.apps {
		if l.apps[i].Name == name {
			app := l.apps[i]
			return &app
		}
	}
	return nil
}

// SwitchApp activates the app with the same path, marking it running and
// closing the launcher surface. Unknown apps are ignored.
func (l *Local) SwitchApp(app *App) {
	if app == nil {
		return
	}

	l.mu.Lock()
	var switched *App
	for i := range l.apps {
		if l.apps[i].Path == app.Path {
			l.apps[i].Running = true
			l.apps[i].LastActivated = l.now()
			switched = &l.apps[i]
			break
		}
	}
	if switched == nil {
		l.mu.Unlock()
		l.logger.Warn("switch to unknown app ignored", "path", app.Path)
		return
	}
	previous := l.current
	l.current = switched.Path
	l.visible = false
	name, path := switched.Name, switched.Path
	l.mu.Unlock()

	l.logger.Info("app switched", "name", name, "path", path, "previous", previous)
	l.hub.Publish(events.AppSwitched, map[string]string{
		"name":     name,
		"path":     path,
		"previous": previous,
	})
}

func (l *Local) DrawAppsLauncher() {
	l.mu.Lock()
	l.visible = true
	l.mu.Unlock()

	l.logger.Debug("launcher shown")
	l.hub.Publish(events.LauncherShown, nil)
}

func (l *Local) CloseLauncher() {
	l.mu.Lock()
	l.visible = false
	l.mu.Unlock()

	l.logger.Debug("launcher hidden")
	l.hub.Publish(events.LauncherHidden, nil)
}

func (l *Local) Apps() []*App {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*App, len(l.apps))
	for i := range l.apps {
		app := l.apps[i]
		out[i] = &app
	}
	return out
}

func (l *Local) CurrentAppPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

func (l *Local) AddAction(binding Binding) {
	l.mu.Lock()
	l.actions = append(l.actions, binding)
	count := len(l.actions)
	l.mu.Unlock()

	l.logger.Info("action added",
		"gesture", binding.Gesture.String(),
		"command", binding.Command,
		"binding_id", binding.ID,
		"bindings", count,
	)
	l.hub.Publish(events.ActionAdded, map[string]string{
		"id":          binding.ID,
		"gesture":     binding.Gesture.String(),
		"command":     binding.Command,
		"fingerprint": binding.Fingerprint,
	})
}

// Actions returns a snapshot of the action table in registration order.
func (l *Local) Actions() []Binding {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Binding(nil), l.actions...)
}

// Visible reports whether the launcher surface is open.
func (l *Local) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

// Trigger runs every binding whose gesture matches action, in registration
// order, and returns how many ran. The gesture recogniser calls this.
func (l *Local) Trigger(action gesture.Action) int {
	l.mu.Lock()
	var matched []Binding
	for _, b := range l.actions {
		if b.Gesture.Equal(action) {
			matched = append(matched, b)
		}
	}
	l.mu.Unlock()

	// Bindings may call back into the launcher, so run them unlocked.
	for _, b := range matched {
		if b.Run != nil {
			b.Run()
		}
	}

	if len(matched) > 0 {
		l.hub.Publish(events.ActionFired, map[string]any{
			"gesture": action.String(),
			"count":   len(matched),
		})
	}
	log.WithGesture(action.String()).Debug("gesture triggered", "matched", len(matched))
	return len(matched)
}
