package staticvec

import (
	"fmt"
	"iter"
	"unsafe"

	"golang.org/x/exp/slices"

	"github.com/comalice/staticvec/internal/cell"
)

// Vector is a sequence of at most len(S) elements of type T stored inline.
// The zero value is an empty Vector ready to use.
type Vector[T any, S Storage[T]] struct {
	size  int
	store S
}

// cells views the whole storage block, occupied or not.
func (v *Vector[T, S]) cells() []cell.Cell[T] {
	return unsafe.Slice((*cell.Cell[T])(unsafe.Pointer(&v.store)), len(v.store))
}

func (v *Vector[T, S]) live() []cell.Cell[T] {
	return v.cells()[:v.size]
}

// Make returns a Vector holding count zero values.
func Make[T any, S Storage[T]](count int) (Vector[T, S], error) {
	var zero T
	return Filled[T, S](count, zero)
}

// Filled returns a Vector holding count copies of value.
func Filled[T any, S Storage[T]](count int, value T) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.AppendN(count, value); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// Of returns a Vector holding values in order.
func Of[T any, S Storage[T]](values ...T) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.Append(values...); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// OfLen returns a Vector holding values followed by zero values up to count elements.
// When len(values) >= count no padding is added.
func OfLen[T any, S Storage[T]](count int, values ...T) (Vector[T, S], error) {
	if count < 0 {
		return Vector[T, S]{}, countError(count)
	}
	v, err := Of[T, S](values...)
	if err != nil {
		return Vector[T, S]{}, err
	}
	if err := v.Resize(max(count, v.size)); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// MakeFunc returns a Vector of count elements, each built in place by init.
// If init fails, the elements built so far are released and an empty Vector is returned
// together with the error.
func MakeFunc[T any, S Storage[T]](count int, init func(i int, p *T) error) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.reserve(count); err != nil {
		return Vector[T, S]{}, err
	}
	for i := 0; i < count; i++ {
		if _, err := v.EmplaceBack(func(p *T) error { return init(i, p) }); err != nil {
			v.Clear()
			return Vector[T, S]{}, err
		}
	}
	return v, nil
}

// FromSlice returns a Vector holding a copy of src.
func FromSlice[T any, S Storage[T]](src []T) (Vector[T, S], error) {
	return Of[T, S](src...)
}

// FromSeq returns a Vector holding the elements of seq in order.
func FromSeq[T any, S Storage[T]](seq iter.Seq[T]) (Vector[T, S], error) {
	var v Vector[T, S]
	if _, err := v.AppendSeq(seq); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T, S]) Len() int {
	return v.size
}

// Cap returns the fixed capacity.
func (v *Vector[T, S]) Cap() int {
	return len(v.store)
}

// Empty reports whether v holds no elements.
func (v *Vector[T, S]) Empty() bool {
	return v.size == 0
}

// Full reports whether v holds Cap() elements.
func (v *Vector[T, S]) Full() bool {
	return v.size == len(v.store)
}

// Ref returns a pointer to the element at index i. The pointer is invalidated by any
// operation that shifts or releases that element.
func (v *Vector[T, S]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, indexError(i, v.size)
	}
	return v.cells()[i].Value(), nil
}

// At returns the element at index i.
func (v *Vector[T, S]) At(i int) (T, error) {
	p, err := v.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Front returns the first element.
func (v *Vector[T, S]) Front() (T, error) {
	return v.At(0)
}

// Back returns the last element.
func (v *Vector[T, S]) Back() (T, error) {
	return v.At(v.size - 1)
}

// Take moves the element at index i out of v. The slot keeps its place in the sequence and
// holds the zero value afterwards.
func (v *Vector[T, S]) Take(i int) (T, error) {
	if _, err := v.Ref(i); err != nil {
		var zero T
		return zero, err
	}
	return v.cells()[i].Take(), nil
}

// IndexOf returns the index denoted by it, which must be a position in [0, Len()] of v.
func (v *Vector[T, S]) IndexOf(it ConstIterator[T]) (int, error) {
	return v.position(it.it)
}

func (v *Vector[T, S]) position(it Iterator[T]) (int, error) {
	own := v.cells()
	if len(it.cells) != len(own) || &it.cells[0] != &own[0] {
		return 0, fmt.Errorf("%w: iterator belongs to another vector", ErrIndexOutOfRange)
	}
	if it.pos < 0 || it.pos > v.size {
		return 0, indexError(it.pos, v.size)
	}
	return it.pos, nil
}

// Begin returns an iterator to the first element.
func (v *Vector[T, S]) Begin() Iterator[T] {
	return Iterator[T]{cells: v.cells()}
}

// End returns an iterator one past the last element.
func (v *Vector[T, S]) End() Iterator[T] {
	return Iterator[T]{cells: v.cells(), pos: v.size}
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T, S]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T, S]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

// All returns an iterator over index/element pairs in order.
func (v *Vector[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		cells := v.cells()
		for i := 0; i < v.size; i++ {
			if !yield(i, cells[i].Get()) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		cells := v.cells()
		for i := 0; i < v.size; i++ {
			if !yield(cells[i].Get()) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from last to first.
func (v *Vector[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		cells := v.cells()
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, cells[i].Get()) {
				return
			}
		}
	}
}

// AppendTo appends the elements of v to dst and returns the extended slice.
func (v *Vector[T, S]) AppendTo(dst []T) []T {
	for _, c := range v.live() {
		dst = append(dst, c.Get())
	}
	return dst
}

func (v *Vector[T, S]) String() string {
	return fmt.Sprint(v.AppendTo(make([]T, 0, v.size)))
}

// Capacities lists the capacities a Vector can be instantiated with, ascending.
func Capacities() []int {
	return slices.Clone(capacities[:])
}
