// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are right-nested chains of
// cons cells ending in NIL.
package list

import (
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/pair"
)

// Length returns the number of elements in list. Counting stops at the
// first cdr that is not a pair.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for pair.Is(list) {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	list := null.Null

	for i := len(elements) - 1; i >= 0; i-- {
		list = pair.Cons(elements[i], list)
	}

	return list
}

// Slice returns the elements of list. The second result is false if list
// does not end in NIL.
// The list must be non-circular.
func Slice(list cell.I) ([]cell.I, bool) {
	elements := make([]cell.I, 0, Length(list))

	for pair.Is(list) {
		elements = append(elements, pair.Car(list))

		list = pair.Cdr(list)
	}

	return elements, null.Is(list)
}
