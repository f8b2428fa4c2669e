package staticvec

import (
	"cmp"
	"iter"

	"github.com/comalice/staticvec/internal/cell"
)

// Iterator is a mutable random-access position in a Vector.
//
// Iterators are values: arithmetic returns a new Iterator and never moves the receiver.
// Dereferencing is unchecked apart from the capacity bounds Go enforces on every slice index;
// callers must only dereference positions in [0, Len()) of the owning Vector. Comparing
// iterators of different vectors is meaningless.
type Iterator[T any] struct {
	cells []cell.Cell[T]
	pos   int
}

// Value returns the element at the position.
func (it Iterator[T]) Value() T {
	return it.cells[it.pos].Get()
}

// Ptr returns a pointer to the element at the position.
func (it Iterator[T]) Ptr() *T {
	return it.cells[it.pos].Value()
}

// Set overwrites the element at the position.
func (it Iterator[T]) Set(x T) {
	*it.cells[it.pos].Value() = x
}

// At returns the element k positions away.
func (it Iterator[T]) At(k int) T {
	return it.cells[it.pos+k].Get()
}

func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}

// Add returns the iterator k positions forward.
func (it Iterator[T]) Add(k int) Iterator[T] {
	it.pos += k
	return it
}

// Sub returns the iterator k positions back.
func (it Iterator[T]) Sub(k int) Iterator[T] {
	it.pos -= k
	return it
}

// Diff returns the distance from o to it.
func (it Iterator[T]) Diff(o Iterator[T]) int {
	return it.pos - o.pos
}

func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.pos == o.pos
}

func (it Iterator[T]) Less(o Iterator[T]) bool {
	return it.pos < o.pos
}

func (it Iterator[T]) Compare(o Iterator[T]) int {
	return cmp.Compare(it.pos, o.pos)
}

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is a read-only random-access position in a Vector.
// There is no conversion back to Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (c ConstIterator[T]) Value() T {
	return c.it.Value()
}

func (c ConstIterator[T]) At(k int) T {
	return c.it.At(k)
}

func (c ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Next()}
}

func (c ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Prev()}
}

func (c ConstIterator[T]) Add(k int) ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Add(k)}
}

func (c ConstIterator[T]) Sub(k int) ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Sub(k)}
}

func (c ConstIterator[T]) Diff(o ConstIterator[T]) int {
	return c.it.Diff(o.it)
}

func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	return c.it.Equal(o.it)
}

func (c ConstIterator[T]) Less(o ConstIterator[T]) bool {
	return c.it.Less(o.it)
}

func (c ConstIterator[T]) Compare(o ConstIterator[T]) int {
	return c.it.Compare(o.it)
}

// Range returns the elements in [first, last) as a sequence, for use with FromSeq,
// AppendSeq and InsertSeq.
func Range[T any](first, last ConstIterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; it.Less(last); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
