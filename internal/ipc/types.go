package ipc

import (
	"time"

	"github.com/StarNumber12046/rocket/internal/events"
	"github.com/StarNumber12046/rocket/internal/history"
)

// CommandRequest is the JSON body for POST /command.
type CommandRequest struct {
	Line string `json:"line"`
}

// CommandResponse is returned when a command line succeeds.
type CommandResponse struct {
	Output string `json:"output"`
}

// GestureRequest is the JSON body for POST /gesture.
type GestureRequest struct {
	Gesture string `json:"gesture"`
}

// GestureResponse reports how many bindings fired.
type GestureResponse struct {
	Gesture string `json:"gesture"`
	Fired   int    `json:"fired"`
}

// BindingResponse describes one registered binding.
type BindingResponse struct {
	ID          string    `json:"id"`
	Gesture     string    `json:"gesture"`
	Command     string    `json:"command"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommandInfo describes a registered command.
type CommandInfo struct {
	Name  string `json:"name"`
	Arity int    `json:"arity"`
	Help  string `json:"help"`
}

// HistoryResponse is returned by GET /history.
type HistoryResponse struct {
	Entries []history.Entry `json:"entries"`
}

// EventsResponse is returned by GET /events.
type EventsResponse struct {
	Events []events.Event `json:"events"`
}

// ErrorResponse is returned on errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthzResponse is returned by GET /healthz.
type HealthzResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Commands      int    `json:"commands"`
	Bindings      int    `json:"bindings"`
	CurrentApp    string `json:"current_app,omitempty"`
}
