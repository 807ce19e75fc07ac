package command

import (
	"github.com/StarNumber12046/rocket/internal/launcher"
)

// Invocation is a compiled command. It owns its arguments and can be called
// any number of times.
type Invocation func() (string, error)

// Descriptor is one registry entry: a help string plus the two adapters built
// from a single handler's signature. Build one with Command0..Command3.
type Descriptor struct {
	help  string
	arity int

	// now and later receive the argument tokens only (command name removed),
	// already checked against arity.
	now   func(l launcher.Launcher, args []Token) (string, error)
	later func(l launcher.Launcher, args []Token) (Invocation, error)
}

// Help returns the help text shown by the help command.
func (d *Descriptor) Help() string { return d.help }

// Arity is the number of arguments after the command name.
func (d *Descriptor) Arity() int { return d.arity }

func (d *Descriptor) invokeNow(l launcher.Launcher, tokens []Token) (string, error) {
	if err := d.checkArity(tokens); err != nil {
		return "", err
	}
	return d.now(l, tokens[1:])
}

func (d *Descriptor) compile(l launcher.Launcher, tokens []Token) (Invocation, error) {
	if err := d.checkArity(tokens); err != nil {
		return nil, err
	}
	return d.later(l, tokens[1:])
}

func (d *Descriptor) checkArity(tokens []Token) error {
	if len(tokens) == 0 {
		return ErrEmptyCommand
	}
	if len(tokens) != d.arity+1 {
		return &ArityMismatchError{
			Command:  tokens[0].Owned(),
			Expected: d.arity,
			Got:      len(tokens) - 1,
		}
	}
	return nil
}

// Command0 wraps a handler without arguments.
func Command0(help string, fn func(launcher.Launcher) (string, error)) *Descriptor {
	return &Descriptor{
		help:  help,
		arity: 0,
		now: func(l launcher.Launcher, _ []Token) (string, error) {
			return fn(l)
		},
		later: func(l launcher.Launcher, _ []Token) (Invocation, error) {
			return func() (string, error) { return fn(l) }, nil
		},
	}
}

// Command1 wraps a handler with one typed argument.
func Command1[A any](help string, pa Param[A], fn func(launcher.Launcher, A) (string, error)) *Descriptor {
	return &Descriptor{
		help:  help,
		arity: 1,
		now: func(l launcher.Launcher, args []Token) (string, error) {
			a, err := bind1[borrowed](pa, args)
			if err != nil {
				return "", err
			}
			return fn(l, a)
		},
		later: func(l launcher.Launcher, args []Token) (Invocation, error) {
			a, err := bind1[owned](pa, args)
			if err != nil {
				return nil, err
			}
			return func() (string, error) { return fn(l, a) }, nil
		},
	}
}

// Command2 wraps a handler with two typed arguments.
func Command2[A, B any](help string, pa Param[A], pb Param[B], fn func(launcher.Launcher, A, B) (string, error)) *Descriptor {
	return &Descriptor{
		help:  help,
		arity: 2,
		now: func(l launcher.Launcher, args []Token) (string, error) {
			a, b, err := bind2[borrowed](pa, pb, args)
			if err != nil {
				return "", err
			}
			return fn(l, a, b)
		},
		later: func(l launcher.Launcher, args []Token) (Invocation, error) {
			a, b, err := bind2[owned](pa, pb, args)
			if err != nil {
				return nil, err
			}
			return func() (string, error) { return fn(l, a, b) }, nil
		},
	}
}

// Command3 wraps a handler with three typed arguments.
func Command3[A, B, C any](help string, pa Param[A], pb Param[B], pc Param[C], fn func(launcher.Launcher, A, B, C) (string, error)) *Descriptor {
	return &Descriptor{
		help:  help,
		arity: 3,
		now: func(l launcher.Launcher, args []Token) (string, error) {
			a, b, c, err := bind3[borrowed](pa, pb, pc, args)
			if err != nil {
				return "", err
			}
			return fn(l, a, b, c)
		},
		later: func(l launcher.Launcher, args []Token) (Invocation, error) {
			a, b, c, err := bind3[owned](pa, pb, pc, args)
			if err != nil {
				return nil, err
			}
			return func() (string, error) { return fn(l, a, b, c) }, nil
		},
	}
}

func bind1[O ownership, A any](pa Param[A], args []Token) (A, error) {
	var errs argErrors
	a := parseArg[O](pa, args[0], &errs)
	return a, errs.err()
}

func bind2[O ownership, A, B any](pa Param[A], pb Param[B], args []Token) (A, B, error) {
	var errs argErrors
	a := parseArg[O](pa, args[0], &errs)
	b := parseArg[O](pb, args[1], &errs)
	return a, b, errs.err()
}

func bind3[O ownership, A, B, C any](pa Param[A], pb Param[B], pc Param[C], args []Token) (A, B, C, error) {
	var errs argErrors
	a := parseArg[O](pa, args[0], &errs)
	b := parseArg[O](pb, args[1], &errs)
	c := parseArg[O](pc, args[2], &errs)
	return a, b, c, errs.err()
}
