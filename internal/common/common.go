// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the printable form of a cell. This is what puts writes.
// Cells that are not stringers fall back to their literal form.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		return literal.String(c)
	}

	return b.String()
}
