package staticvec

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/comalice/staticvec/internal/cell"
)

// Sequence is the read view shared by every *Vector[T, S], whatever its capacity.
// It lets vectors of different capacities be compared with each other.
type Sequence[T any] interface {
	Len() int
	live() []cell.Cell[T]
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a Sequence[T], b Sequence[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.EqualFunc(a.live(), b.live(), func(x cell.Cell[T], y cell.Cell[U]) bool {
		return eq(x.Get(), y.Get())
	})
}

// Compare orders a and b lexicographically. When one is a prefix of the other the shorter
// one sorts first. The result is -1, 0 or +1.
func Compare[T constraints.Ordered](a, b Sequence[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T, U any](a Sequence[T], b Sequence[U], compare func(T, U) int) int {
	return slices.CompareFunc(a.live(), b.live(), func(x cell.Cell[T], y cell.Cell[U]) int {
		return compare(x.Get(), y.Get())
	})
}

// Less reports whether a orders before b.
func Less[T constraints.Ordered](a, b Sequence[T]) bool {
	return Compare(a, b) < 0
}
