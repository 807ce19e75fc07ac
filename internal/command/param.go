package command

import (
	"strings"

	"github.com/StarNumber12046/rocket/internal/gesture"
)

// Param converts the text of one token into a handler argument.
type Param[T any] func(text string) (T, error)

var (
	// Text passes the token through. When run immediately the string aliases
	// the line; compiled commands receive a copy.
	Text Param[string] = func(text string) (string, error) {
		return text, nil
	}

	// OwnedText always copies the token, even when run immediately.
	OwnedText Param[string] = func(text string) (string, error) {
		return strings.Clone(text), nil
	}

	// Gesture parses a gesture spec with lenient finger counts.
	Gesture Param[gesture.Action] = gesture.Parse

	// StrictGesture parses a gesture spec and rejects malformed finger counts.
	StrictGesture Param[gesture.Action] = gesture.ParseStrict
)

// ownership selects how token text reaches a Param: borrowed for immediate
// calls, owned for compiled ones.
type ownership interface {
	text(Token) string
}

type borrowed struct{}

func (borrowed) text(t Token) string { return t.String() }

type owned struct{}

func (owned) text(t Token) string { return t.Owned() }

// argErrors accumulates parse failures across all arguments of one call.
type argErrors struct {
	errs []error
}

func (a *argErrors) err() error {
	if len(a.errs) == 0 {
		return nil
	}
	return &ArgumentParseError{Errs: a.errs}
}

func parseArg[O ownership, T any](p Param[T], tok Token, errs *argErrors) T {
	var o O
	v, err := p(o.text(tok))
	if err != nil {
		errs.errs = append(errs.errs, err)
	}
	return v
}
