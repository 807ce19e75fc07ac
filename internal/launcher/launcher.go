// Package launcher holds the collaborator the command handlers drive: the list
// of known apps, the active app, the launcher surface and the table of gesture
// bindings.
package launcher

import "time"

//go:generate mockgen -destination=mocks/mock_launcher.go -package=mocks github.com/StarNumber12046/rocket/internal/launcher Launcher

// App is one entry of the launcher's app list.
type App struct {
	Name          string
	Path          string
	Running       bool
	LastActivated time.Time
}

// Launcher is the surface the built-in commands need.
type Launcher interface {
	// GetApp returns the app called name, or nil.
	GetApp(name string) *App
	SwitchApp(app *App)
	DrawAppsLauncher()
	CloseLauncher()
	// Apps returns the app list in launcher order.
	Apps() []*App
	// CurrentAppPath is empty when no app is active.
	CurrentAppPath() string
	AddAction(binding Binding)
}
