package gesture

import (
	"errors"
	"testing"
)

func TestParseValidSpecs(t *testing.T) {
	tests := []struct {
		spec string
		want Action
	}{
		{"Swipe:Up:2", Swipe(Up, 2)},
		{"Swipe:Right:4", Swipe(Right, 4)},
		{"Pinch:In:3", Pinch(In, 3)},
		{"Pinch:Out:2", Pinch(Out, 2)},
		{"Tap:1", Tap(1)},
		{"Tap::2", Tap(2)},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.spec, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseShapeErrors(t *testing.T) {
	for spec, want := range map[string]string{
		"Swipe:Up":      "Expected Swipe:direction:fingers",
		"Pinch:In:2:3":  "Expected Pinch:direction:fingers",
		"Tap":           "Expected Tap:fingers",
		"Tap:Up:2":      "Expected Tap:fingers",
		"Swipe:Up:1:ex": "Expected Swipe:direction:fingers",
	} {
		_, err := Parse(spec)
		var shapeErr *ShapeError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("Parse(%q) error = %v, want ShapeError", spec, err)
		}
		if err.Error() != want {
			t.Fatalf("Parse(%q) error = %q, want %q", spec, err.Error(), want)
		}
	}
}

func TestParseUnknownKind(t *testing.T) {
	_, err := Parse("Spin:1")
	var kindErr *UnknownKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
	if kindErr.Value != "Spin" {
		t.Fatalf("kind value = %q, want Spin", kindErr.Value)
	}

	// Kinds are case-sensitive.
	if _, err := Parse("swipe:Up:2"); !errors.As(err, &kindErr) {
		t.Fatalf("expected lowercase kind to be rejected, got %v", err)
	}
}

func TestParseUnknownDirection(t *testing.T) {
	_, err := Parse("Pinch:Up:2")
	var dirErr *UnknownDirectionError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected UnknownDirectionError, got %v", err)
	}
	if dirErr.Kind != KindPinch || dirErr.Value != "Up" {
		t.Fatalf("unexpected error fields: %#v", dirErr)
	}
	if err.Error() != "Unknown direction: Up (Pinch)" {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestParseEmpty(t *testing.T) {
	for _, spec := range []string{"", ":", "::"} {
		if _, err := Parse(spec); !errors.Is(err, ErrEmpty) {
			t.Fatalf("Parse(%q) error = %v, want ErrEmpty", spec, err)
		}
	}
}

func TestParseLenientFingers(t *testing.T) {
	tests := map[string]int{
		"Tap:abc":    0,
		"Tap:3x":     3,
		"Tap:-2":     0,
		"Tap:+5":     5,
		"Swipe:Up:x": 0,
	}
	for spec, want := range tests {
		got, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q): %v", spec, err)
		}
		if got.Fingers != want {
			t.Fatalf("Parse(%q).Fingers = %d, want %d", spec, got.Fingers, want)
		}
	}
}

func TestParseStrictRejectsMalformedFingers(t *testing.T) {
	for _, spec := range []string{"Tap:abc", "Tap:3x", "Tap:-1", "Swipe:Up:"} {
		_, err := ParseStrict(spec)
		if err == nil {
			t.Fatalf("ParseStrict(%q) succeeded, want error", spec)
		}
	}
	got, err := ParseStrict("Swipe:Down:3")
	if err != nil {
		t.Fatalf("ParseStrict: %v", err)
	}
	if got != Swipe(Down, 3) {
		t.Fatalf("ParseStrict = %#v", got)
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for _, a := range []Action{Swipe(Left, 3), Pinch(Out, 2), Tap(1)} {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.String(), err)
		}
		if !got.Equal(a) {
			t.Fatalf("round trip %v -> %v", a, got)
		}
	}
}

func TestActionEqualIgnoresTapDirection(t *testing.T) {
	a := Action{Kind: KindTap, Direction: Up, Fingers: 2}
	if !a.Equal(Tap(2)) {
		t.Fatalf("tap with stray direction should equal Tap(2)")
	}
	if Swipe(Up, 2).Equal(Swipe(Down, 2)) {
		t.Fatalf("swipes with different directions must differ")
	}
	if Tap(1).Equal(Tap(2)) {
		t.Fatalf("taps with different fingers must differ")
	}
}
