package command

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/StarNumber12046/rocket/internal/launcher"
	"github.com/StarNumber12046/rocket/internal/log"
)

// Dispatcher runs command lines against a registry.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
	// sink receives failures of compiled commands, which have no caller to
	// return to.
	sink *slog.Logger

	strictGestures bool
	extra          map[string]*Descriptor
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSink sets the logger that compiled commands report failures to.
func WithSink(sink *slog.Logger) Option {
	return func(d *Dispatcher) {
		if sink != nil {
			d.sink = sink
		}
	}
}

// WithStrictGestures makes on reject malformed finger counts instead of
// reading them as 0.
func WithStrictGestures(strict bool) Option {
	return func(d *Dispatcher) {
		d.strictGestures = strict
	}
}

// WithCommand registers an extra command next to the built-ins. It replaces a
// built-in of the same name.
func WithCommand(name string, desc *Descriptor) Option {
	return func(d *Dispatcher) {
		if d.extra == nil {
			d.extra = make(map[string]*Descriptor)
		}
		d.extra[name] = desc
	}
}

// NewDispatcher builds a dispatcher with a fresh registry of the built-in
// commands plus any added with WithCommand.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: log.WithComponent("command"),
		sink:   log.WithComponent("action"),
	}
	for _, opt := range opts {
		opt(d)
	}

	commands := builtinCommands(d)
	for name, desc := range d.extra {
		commands[name] = desc
	}
	d.registry = NewRegistry(commands)
	d.extra = nil
	return d
}

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
)

// Default returns the process-wide dispatcher over the built-in commands. It
// is built on first use and never changes afterwards.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = NewDispatcher()
	})
	return defaultDispatcher
}

// Registry returns the dispatcher's registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// RunNow parses line and runs it immediately. A blank line is a no-op that
// returns an empty result.
func (d *Dispatcher) RunNow(l launcher.Launcher, line string) (string, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", nil
	}
	d.logger.Debug("parsed", "tokens", tokenStrings(tokens))

	desc, ok := d.registry.Lookup(tokens[0].String())
	if !ok {
		return "", &CommandNotFoundError{Name: tokens[0].Owned()}
	}
	return desc.invokeNow(l, tokens)
}

// CompileLater parses line into a closure that runs the command when called.
// Unlike RunNow, a blank line is an error: there would be nothing to bind.
// Errors from the command at call time are logged to the sink.
func (d *Dispatcher) CompileLater(l launcher.Launcher, line string) (func(), error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}
	d.logger.Debug("parsed", "tokens", tokenStrings(tokens))

	desc, ok := d.registry.Lookup(tokens[0].String())
	if !ok {
		return nil, &CommandNotFoundError{Name: tokens[0].Owned()}
	}
	inv, err := desc.compile(l, tokens)
	if err != nil {
		return nil, err
	}

	command := strings.Clone(line)
	sink := d.sink
	return func() {
		out, err := inv()
		if err != nil {
			sink.Error("bound command failed", "command", command, "error", err)
			return
		}
		sink.Debug("bound command finished", "command", command, "output", out)
	}, nil
}
