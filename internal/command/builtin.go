package command

import (
	"strings"

	"github.com/StarNumber12046/rocket/internal/gesture"
	"github.com/StarNumber12046/rocket/internal/launcher"
)

// builtinCommands returns the built-in command table. help and on close over
// d, so d.registry must be set before either runs.
func builtinCommands(d *Dispatcher) map[string]*Descriptor {
	gestureParam := Gesture
	if d.strictGestures {
		gestureParam = StrictGesture
	}

	return map[string]*Descriptor{
		"help":   Command0("- Show help", d.help),
		"launch": Command1("- launch <app name> - Start or switch to app", Text, launch),
		"show":   Command0("- Show the launcher", show),
		"hide":   Command0("- Hide the launcher", hide),
		"switch": Command1(
			"- switch <next|prev|last> - Switch to the next, previous or last running app",
			Text, switchTo),
		"on": Command2(
			"- on <gesture> <command> - execute command when the given action occurs",
			gestureParam, Text, d.onAction),
	}
}

func (d *Dispatcher) help(launcher.Launcher) (string, error) {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, name := range d.registry.Names() {
		desc, _ := d.registry.Lookup(name)
		sb.WriteString("\t" + name + " " + desc.Help() + "\n")
	}
	return sb.String(), nil
}

func launch(l launcher.Launcher, name string) (string, error) {
	app := l.GetApp(name)
	if app == nil {
		return "", &AppNotFoundError{Name: strings.Clone(name)}
	}
	l.SwitchApp(app)
	return "Launching: " + name, nil
}

func show(l launcher.Launcher) (string, error) {
	l.DrawAppsLauncher()
	return "OK", nil
}

func hide(l launcher.Launcher) (string, error) {
	l.CloseLauncher()
	return "OK", nil
}

func switchTo(l launcher.Launcher, target string) (string, error) {
	switch target {
	case "next", "prev":
		apps := l.Apps()
		current := l.CurrentAppPath()
		start := indexOfPath(apps, current)
		if current == "" || start < 0 {
			return "No apps running", nil
		}
		step := 1
		if target == "prev" {
			step = -1
		}
		l.SwitchApp(nextRunning(apps, start, step))

	case "last":
		current := l.CurrentAppPath()
		var last *launcher.App
		for _, app := range l.Apps() {
			if !app.Running || app.Path == current {
				continue
			}
			if last == nil || app.LastActivated.After(last.LastActivated) {
				last = app
			}
		}
		if last == nil {
			return "No other apps", nil
		}
		l.SwitchApp(last)

	default:
		return "", &UnknownSwitchTargetError{Target: strings.Clone(target)}
	}

	return "OK", nil
}

func indexOfPath(apps []*launcher.App, path string) int {
	for i, app := range apps {
		if app.Path == path {
			return i
		}
	}
	return -1
}

// nextRunning walks apps circularly from start in direction step and returns
// the first running app. If nothing else runs, it returns apps[start].
func nextRunning(apps []*launcher.App, start, step int) *launcher.App {
	n := len(apps)
	for i := 1; i < n; i++ {
		app := apps[((start+step*i)%n+n)%n]
		if app.Running {
			return app
		}
	}
	return apps[start]
}

// onAction binds a gesture to a nested command line. The line is compiled now,
// so a typo fails here rather than when the gesture fires.
func (d *Dispatcher) onAction(l launcher.Launcher, action gesture.Action, command string) (string, error) {
	run, err := d.CompileLater(l, command)
	if err != nil {
		return "", &BindError{Command: strings.Clone(command), Err: err}
	}

	l.AddAction(launcher.NewBinding(action, strings.Clone(command), run))
	return "OK", nil
}
