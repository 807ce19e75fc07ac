package gesture

import (
	"strconv"
	"strings"
)

// Parse converts a gesture spec into an Action.
//
// Finger counts are read leniently: leading digits are used and anything that
// is not a number yields 0. Use ParseStrict to reject malformed counts.
func Parse(spec string) (Action, error) {
	return parse(spec, lenientFingers)
}

// ParseStrict is Parse with a finger count that must be a non-negative decimal
// integer.
func ParseStrict(spec string) (Action, error) {
	return parse(spec, strictFingers)
}

func parse(spec string, fingers func(string) (int, error)) (Action, error) {
	segments := split(spec)
	if len(segments) == 0 {
		return Action{}, ErrEmpty
	}

	kind := Kind(segments[0])
	switch kind {
	case KindSwipe, KindPinch:
		if len(segments) != 3 {
			return Action{}, &ShapeError{Kind: kind}
		}
		dir, ok := lookupDirection(kind, segments[1])
		if !ok {
			return Action{}, &UnknownDirectionError{Kind: kind, Value: segments[1]}
		}
		n, err := fingers(segments[2])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: kind, Direction: dir, Fingers: n}, nil

	case KindTap:
		if len(segments) != 2 {
			return Action{}, &ShapeError{Kind: kind}
		}
		n, err := fingers(segments[1])
		if err != nil {
			return Action{}, err
		}
		return Tap(n), nil
	}

	return Action{}, &UnknownKindError{Value: segments[0]}
}

// split breaks spec on ':' and drops empty segments, so "Tap::2" reads as
// "Tap:2".
func split(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool { return r == ':' })
}

func lookupDirection(kind Kind, value string) (Direction, bool) {
	for _, dir := range directions[kind] {
		if string(dir) == value {
			return dir, true
		}
	}
	return "", false
}

// lenientFingers reads an optional sign and the leading digits of s. Negative
// or unreadable counts become 0.
func lenientFingers(s string) (int, error) {
	s = strings.TrimLeft(s, " \t")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > (1<<31-1)/10 {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return 0, nil
	}
	return n, nil
}

func strictFingers(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, &FingersError{Value: s}
	}
	return n, nil
}

// Directions returns the direction vocabulary for kind, or nil for taps.
func Directions(kind Kind) []Direction {
	return append([]Direction(nil), directions[kind]...)
}
