package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain words", "a b c", []string{"a", "b", "c"}},
		{"quoted span", `a "b c" d`, []string{"a", "b c", "d"}},
		{"blank", "   ", []string{}},
		{"empty", "", []string{}},
		{"quoted empty", `a "" b`, []string{"a", "", "b"}},
		{"repeated separators", "  launch    Notes  ", []string{"launch", "Notes"}},
		{"tabs and newline", "show\t\n", []string{"show"}},
		{"quoted keeps spaces", `"  x  "`, []string{"  x  "}},
		{"glued quotes split", `a"b c"d`, []string{"a", "b c", "d"}},
		{"nested command", `on Tap:2 "launch \"x"`, nil},
		{"gesture binding", `on Swipe:Up:3 "switch next"`, []string{"on", "Swipe:Up:3", "switch next"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.line)
			if tt.want == nil {
				if err == nil {
					t.Fatalf("Tokenize(%q) succeeded with %v, want error", tt.line, tokenStrings(tokens))
				}
				return
			}
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, tokenStrings(tokens)); diff != "" {
				t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestTokenizeUnclosedQuote(t *testing.T) {
	_, err := Tokenize(`a "b`)
	if !errors.Is(err, ErrUnclosedQuote) {
		t.Fatalf("error = %v, want ErrUnclosedQuote", err)
	}
	if err.Error() != "Unclosed quotes" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestTokenViewsLine(t *testing.T) {
	line := `launch "Text Editor"`
	tokens, err := Tokenize(line)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	if tokens[1].start != 8 || tokens[1].end != 19 {
		t.Fatalf("token range = [%d,%d), want [8,19)", tokens[1].start, tokens[1].end)
	}
	if tokens[1].Owned() != "Text Editor" {
		t.Fatalf("Owned() = %q", tokens[1].Owned())
	}
}
