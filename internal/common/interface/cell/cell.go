// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all minimalisp values.
package cell

// I (cell) is the basic unit of storage in minimalisp. NIL, symbols,
// values, pairs and callables are all cells.
type I interface {
	Equal(c I) bool
	Name() string
}
