// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping minimalisp.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.mlsp
var script string //nolint:gochecknoglobals

// Script returns the library evaluated before every minimalisp program.
func Script() string {
	return script
}
