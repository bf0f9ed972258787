// Released under an MIT license. See LICENSE.

// Package token is shared by the minimalisp lexer and parser.
package token

// Class is a token's type.
type Class int

// Token classes.
const (
	// Word is a run of non-space characters outside a string. It may
	// carry leading opening and trailing closing parentheses.
	Word Class = iota

	// String is a complete double-quoted string, quotes included.
	String
)

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	value string
}

type token = T

// New creates a new token.
func New(class Class, value string) *token {
	return &token{
		class: class,
		value: value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Word:
		return "Word"
	case String:
		return "String"
	}

	return "Unknown"
}

// Is checks if a token is of class c.
func (t *token) Is(c Class) bool {
	return t.class == c
}

// String returns a string representation of the token. Useful for debugging.
func (t *token) String() string {
	return t.class.String() + " " + t.value
}

// Value returns the token's text.
func (t *token) Value() string {
	return t.value
}
