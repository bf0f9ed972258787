// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the minimalisp language.
//
// Scanning happens in three passes over the buffered text: comments are
// removed line by line, the remaining text is split into words and
// strings, and each word or string is classified as a literal when the
// parser asks for it.
package lexer

import (
	"strings"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/struct/token"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
)

// T holds the state of the scanner.
type T struct {
	label  string     // File name or other identifier.
	queue  []string   // Buffers waiting to be scanned.
	tokens []*token.T // Scanned tokens not yet returned.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{label: label}
}

// Label returns the name the lexer was created with.
func (l *T) Label() string {
	return l.label
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() (*token.T, error) {
	if len(l.tokens) == 0 && len(l.queue) != 0 {
		text := strings.Join(l.queue, "")
		l.queue = nil

		tokens, err := Tokens(StripComments(text))
		if err != nil {
			return nil, err
		}

		l.tokens = tokens
	}

	if len(l.tokens) == 0 {
		return nil, nil
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t, nil
}

// StripComments removes everything from a ';' to the end of its line,
// unless the ';' is inside a string. Newlines become spaces.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		fragments := strings.Split(line, ";")

		kept := fragments[0]
		for _, f := range fragments[1:] {
			if quotes(kept)%2 == 0 {
				break
			}

			kept += ";" + f
		}

		lines[i] = kept
	}

	return strings.Join(lines, " ")
}

// Tokens splits text into words and strings. Strings may contain spaces
// and backslash-escaped quotes.
func Tokens(text string) ([]*token.T, error) {
	var tokens []*token.T

	fragments := strings.Split(text, `"`)
	last := len(fragments) - 1
	inString := false

	for i := 0; i <= last; i++ {
		if !inString {
			for _, w := range strings.Fields(fragments[i]) {
				tokens = append(tokens, token.New(token.Word, w))
			}

			inString = true

			continue
		}

		body := fragments[i]
		for escaped(body) && i < last {
			i++
			body += `"` + fragments[i]
		}

		if i == last {
			return nil, failure.Incompletef("unterminated string \"%s", body)
		}

		tokens = append(tokens, token.New(token.String, `"`+body+`"`))
		inString = false
	}

	return tokens, nil
}

// Classify converts the text of a single token into a cell.
func Classify(text string) (cell.I, error) {
	switch {
	case value.IsNumber(text),
		strings.HasPrefix(text, "#"),
		strings.HasPrefix(text, `"`):
		v, err := value.Decode(text)
		if err != nil {
			return nil, err
		}

		return v, nil
	case text == ".":
		return Separator, nil
	case strings.EqualFold(text, "NIL"):
		return null.Null, nil
	case strings.HasPrefix(text, "'"):
		if len(text) == 1 {
			return nil, failure.Syntaxf("quote without a symbol or list")
		}

		return sym.Quoted(text[1:]), nil
	}

	return sym.New(text), nil
}

// Does s end with an odd number of backslashes?
func escaped(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}

	return n%2 == 1
}

// Count the double quotes in s that are not escaped.
func quotes(s string) int {
	n := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			n++
		}
	}

	return n
}
