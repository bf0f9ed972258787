// Released under an MIT license. See LICENSE.

package value

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
)

const (
	digits    = "0123456789"
	hexDigits = "0123456789abcdefABCDEF"
	numeric   = "0123456789+-.eE"
)

// Decode creates a value from its literal text: a number with an optional
// sign, fraction and exponent, a hex integer written #FF, or a double-quoted
// string with backslash escapes.
func Decode(text string) (*T, error) {
	switch {
	case IsNumber(text):
		return number(text)
	case strings.HasPrefix(text, "#"):
		return hex(text)
	case strings.HasPrefix(text, `"`):
		return quoted(text)
	}

	return nil, failure.Syntaxf("%q is not a value literal", text)
}

// IsNumber returns true if text should be read as a number. That is, if it
// begins with a digit or with a sign followed by a digit.
func IsNumber(text string) bool {
	if text == "" {
		return false
	}

	if text[0] == '+' || text[0] == '-' {
		text = text[1:]
	}

	return text != "" && strings.IndexByte(digits, text[0]) >= 0
}

func hex(text string) (*T, error) {
	tail := text[1:]
	if tail == "" || strings.Trim(tail, hexDigits) != "" {
		return nil, failure.Syntaxf("%q is not a valid hex literal", text)
	}

	i, ok := new(big.Int).SetString(tail, 16)
	if !ok {
		return nil, failure.Syntaxf("%q is not a valid hex literal", text)
	}

	return Big(i), nil
}

func number(text string) (*T, error) {
	if strings.Trim(text, numeric) != "" {
		return nil, failure.Syntaxf("%q is not a valid number", text)
	}

	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, failure.Syntaxf("%q is not a valid number", text)
		}

		return Float(f), nil
	}

	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, failure.Syntaxf("%q is not a valid number", text)
	}

	return Big(i), nil
}

func quoted(text string) (*T, error) {
	if len(text) < 2 || !strings.HasSuffix(text, `"`) {
		return nil, failure.Syntaxf("unterminated string %s", text)
	}

	s, err := adapted.ActualBytes(text[1 : len(text)-1])
	if err != nil {
		return nil, failure.Syntaxf("invalid escape in string %s", text)
	}

	return Str(s), nil
}
