package command

import "strings"

// Token is a view into the line it was cut from.
type Token struct {
	src        string
	start, end int
}

// String returns the token text. The result shares memory with the line.
func (t Token) String() string {
	return t.src[t.start:t.end]
}

// Owned returns a copy of the token text that does not keep the line alive.
func (t Token) Owned() string {
	return strings.Clone(t.String())
}

// Tokenize splits line on whitespace. A double quote starts or ends a quoted
// span whose spaces are kept; the quotes themselves are dropped, and "" is an
// empty token. A blank line yields no tokens and no error.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	inQuotes := false
	start := -1

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes {
				tokens = append(tokens, Token{src: line, start: start, end: i})
				inQuotes = false
				start = -1
				continue
			}
			if start >= 0 {
				tokens = append(tokens, Token{src: line, start: start, end: i})
			}
			inQuotes = true
			start = i + 1

		case !inQuotes && isSpace(c):
			if start >= 0 {
				tokens = append(tokens, Token{src: line, start: start, end: i})
				start = -1
			}

		default:
			if start < 0 {
				start = i
			}
		}
	}

	if inQuotes {
		return nil, ErrUnclosedQuote
	}
	if start >= 0 {
		tokens = append(tokens, Token{src: line, start: start, end: len(line)})
	}
	return tokens, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func tokenStrings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}
