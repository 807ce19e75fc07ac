// Package gesture describes the gesture triggers a command can be bound to and
// parses their colon-delimited text form (Swipe:Up:3, Pinch:In:2, Tap:1).
package gesture

import "strconv"

// Kind identifies the gesture family.
type Kind string

const (
	KindSwipe Kind = "Swipe"
	KindPinch Kind = "Pinch"
	KindTap   Kind = "Tap"
)

// Direction is the movement of a swipe or pinch. Tap gestures have none.
type Direction string

const (
	Up    Direction = "Up"
	Down  Direction = "Down"
	Left  Direction = "Left"
	Right Direction = "Right"

	In  Direction = "In"
	Out Direction = "Out"
)

// directions lists the vocabulary accepted for each kind, in canonical order.
var directions = map[Kind][]Direction{
	KindSwipe: {Up, Down, Left, Right},
	KindPinch: {In, Out},
}

// Action is a parsed gesture trigger. Only the fields that belong to Kind are
// meaningful: Direction is empty for taps.
type Action struct {
	Kind      Kind
	Direction Direction
	Fingers   int
}

// Swipe returns a swipe action.
func Swipe(dir Direction, fingers int) Action {
	return Action{Kind: KindSwipe, Direction: dir, Fingers: fingers}
}

// Pinch returns a pinch action.
func Pinch(dir Direction, fingers int) Action {
	return Action{Kind: KindPinch, Direction: dir, Fingers: fingers}
}

// Tap returns a tap action.
func Tap(fingers int) Action {
	return Action{Kind: KindTap, Fingers: fingers}
}

// String renders the canonical gesture spec, the inverse of Parse.
func (a Action) String() string {
	n := strconv.Itoa(a.Fingers)
	if a.Kind == KindTap {
		return string(a.Kind) + ":" + n
	}
	return string(a.Kind) + ":" + string(a.Direction) + ":" + n
}

// Equal reports whether two actions describe the same trigger, ignoring fields
// that are meaningless for the kind.
func (a Action) Equal(b Action) bool {
	if a.Kind != b.Kind || a.Fingers != b.Fingers {
		return false
	}
	if a.Kind == KindTap {
		return true
	}
	return a.Direction == b.Direction
}
