// Released under an MIT license. See LICENSE.

package lexer

import (
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
)

// Separator marks the '.' in a dotted pair literal. The parser consumes
// it; it never reaches the evaluator.
var Separator cell.I = &separator{} //nolint:gochecknoglobals

type separator struct{}

func (s *separator) Equal(c cell.I) bool {
	return c == Separator
}

func (s *separator) Literal() string {
	return "."
}

func (s *separator) Name() string {
	return "separator"
}
