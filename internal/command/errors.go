package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnclosedQuote is returned when a line ends inside a quoted span.
	ErrUnclosedQuote = errors.New("Unclosed quotes")
	// ErrEmptyCommand is returned by CompileLater for a blank line.
	ErrEmptyCommand = errors.New("Empty command")
)

// CommandNotFoundError names a first token with no registered command.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return "Command " + e.Name + " not found"
}

// ArityMismatchError is returned when a command gets the wrong number of
// arguments. Expected and Got exclude the command name.
type ArityMismatchError struct {
	Command  string
	Expected int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("Invalid number of arguments for '%s', expected %d got %d", e.Command, e.Expected, e.Got)
}

// ArgumentParseError collects every argument that failed to parse in one call.
type ArgumentParseError struct {
	Errs []error
}

func (e *ArgumentParseError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, ", ")
}

func (e *ArgumentParseError) Unwrap() []error {
	return e.Errs
}

// AppNotFoundError is returned by launch for an unknown app name.
type AppNotFoundError struct {
	Name string
}

func (e *AppNotFoundError) Error() string {
	return "App not found " + e.Name
}

// UnknownSwitchTargetError is returned by switch for anything but next, prev
// or last.
type UnknownSwitchTargetError struct {
	Target string
}

func (e *UnknownSwitchTargetError) Error() string {
	return "Unknown switch target, expected <next|prev|last>, got: " + e.Target
}

// BindError wraps a nested command that could not be compiled by on.
type BindError struct {
	Command string
	Err     error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("Can't add action: %s for command: \"%s\"", e.Err, e.Command)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
