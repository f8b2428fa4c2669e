// Package staticvec provides Vector, a sequence container with a fixed capacity and inline
// storage.
//
// A Vector holds between zero and N elements, where N is part of its type: the second type
// argument is one of the generated storage blocks CapN[T].
//
//	var v staticvec.Vector[int, staticvec.Cap8[int]]
//	v.PushBack(1)
//	v.PushBack(2)
//
// # Storage
//
// The elements live in an array of cells embedded in the Vector value itself. A Vector never
// allocates and never grows: every operation that would take it past N fails with
// ErrCapacityExceeded before touching its contents. Cells [0, Len()) hold live elements and
// cells [Len(), Cap()) hold the zero value, so released elements are never kept reachable.
// Assigning a Vector value copies the whole block.
//
// # Errors
//
// Operations report failures through returned errors:
//   - ErrCapacityExceeded when an operation would grow past the capacity,
//   - ErrIndexOutOfRange for a bad index or an iterator that does not denote a valid position,
//   - ErrInvalidCount for negative counts,
//   - errors returned by caller-supplied init and clone functions, wrapped with the element
//     index.
//
// Growth operations are all-or-nothing: when they fail, elements appended during the call are
// released and the length is restored. Constructors return an empty Vector on failure.
//
// # Iterators
//
// Iterator and ConstIterator are random-access positions into one Vector's storage. Any
// operation that shifts, releases or overwrites the element at a position invalidates
// iterators to it; appends leave iterators below the old length valid. For plain traversal
// prefer All, Values and Backward.
//
// A Vector is not safe for concurrent mutation.
//
//go:generate go run ./cmd/capgen -root capacity_gen.go -dispatch internal/scenario/dispatch_gen.go
package staticvec
