package gesture

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned for an empty gesture spec.
var ErrEmpty = errors.New("Empty action")

// UnknownKindError names a first segment that is not Swipe, Pinch or Tap.
type UnknownKindError struct {
	Value string
}

func (e *UnknownKindError) Error() string {
	return "Unknown gesture: " + e.Value
}

// UnknownDirectionError names a direction outside the vocabulary of its kind.
type UnknownDirectionError struct {
	Kind  Kind
	Value string
}

func (e *UnknownDirectionError) Error() string {
	return fmt.Sprintf("Unknown direction: %s (%s)", e.Value, e.Kind)
}

// ShapeError is returned when the segment count does not match the kind.
type ShapeError struct {
	Kind Kind
}

func (e *ShapeError) Error() string {
	if e.Kind == KindTap {
		return "Expected Tap:fingers"
	}
	return "Expected " + string(e.Kind) + ":direction:fingers"
}

// FingersError is returned by ParseStrict for a malformed finger count.
type FingersError struct {
	Value string
}

func (e *FingersError) Error() string {
	return fmt.Sprintf("Invalid finger count: %q", e.Value)
}
