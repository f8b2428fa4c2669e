package staticvec

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"

	"github.com/comalice/staticvec/internal/cell"
)

// reserve checks that n more elements fit.
func (v *Vector[T, S]) reserve(n int) error {
	if n < 0 {
		return countError(n)
	}
	if n > len(v.store)-v.size {
		return capacityError(v.size+n, len(v.store))
	}
	return nil
}

// PushBack appends x and returns a pointer to the new element.
func (v *Vector[T, S]) PushBack(x T) (*T, error) {
	if v.size == len(v.store) {
		return nil, capacityError(v.size+1, len(v.store))
	}
	c := &v.cells()[v.size]
	c.Put(x)
	v.size++
	return c.Value(), nil
}

// EmplaceBack appends an element built in place by init and returns a pointer to it.
//
// The new slot is counted before init runs. If init fails the length is restored and the slot
// is reset to the zero value; nothing else observes the partially built element.
func (v *Vector[T, S]) EmplaceBack(init func(*T) error) (*T, error) {
	if v.size == len(v.store) {
		return nil, capacityError(v.size+1, len(v.store))
	}
	c := &v.cells()[v.size]
	v.size++
	if err := c.Construct(init); err != nil {
		v.size--
		return nil, elementError(v.size, err)
	}
	return c.Value(), nil
}

// PopBack releases the last element. It does nothing on an empty Vector.
func (v *Vector[T, S]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.cells()[v.size].Destroy()
}

// Clear releases every element, last first.
func (v *Vector[T, S]) Clear() {
	v.ShrinkTo(0)
}

// ShrinkBy releases the last k elements, or all of them if fewer remain.
func (v *Vector[T, S]) ShrinkBy(k int) {
	if k <= 0 {
		return
	}
	v.ShrinkTo(v.size - min(k, v.size))
}

// ShrinkTo releases trailing elements until at most k remain.
func (v *Vector[T, S]) ShrinkTo(k int) {
	k = max(k, 0)
	if k >= v.size {
		return
	}
	cell.ReleaseAll(v.cells()[k:v.size])
	v.size = k
}

// Resize grows v with zero values or shrinks it to count elements.
func (v *Vector[T, S]) Resize(count int) error {
	var zero T
	return v.ResizeWith(count, zero)
}

// ResizeWith grows v with copies of x or shrinks it to count elements.
// Only growth past the capacity fails.
func (v *Vector[T, S]) ResizeWith(count int, x T) error {
	if count < 0 {
		return countError(count)
	}
	if count <= v.size {
		v.ShrinkTo(count)
		return nil
	}
	return v.AppendN(count-v.size, x)
}

// AppendN appends count copies of x.
func (v *Vector[T, S]) AppendN(count int, x T) error {
	if err := v.reserve(count); err != nil {
		return err
	}
	cells := v.cells()
	for i := 0; i < count; i++ {
		cells[v.size].Put(x)
		v.size++
	}
	return nil
}

// Append appends xs in order.
func (v *Vector[T, S]) Append(xs ...T) error {
	if err := v.reserve(len(xs)); err != nil {
		return err
	}
	cells := v.cells()
	for _, x := range xs {
		cells[v.size].Put(x)
		v.size++
	}
	return nil
}

// EmplaceBackMany appends count elements, each built in place by init.
// If any init fails every element appended by this call is released.
func (v *Vector[T, S]) EmplaceBackMany(count int, init func(*T) error) error {
	if err := v.reserve(count); err != nil {
		return err
	}
	prev := v.size
	for i := 0; i < count; i++ {
		if _, err := v.EmplaceBack(init); err != nil {
			v.ShrinkTo(prev)
			return err
		}
	}
	return nil
}

// AppendSeq appends the elements of seq in order and returns how many were appended.
// If seq yields more elements than fit, the elements appended by this call are released and
// ErrCapacityExceeded is returned.
func (v *Vector[T, S]) AppendSeq(seq iter.Seq[T]) (int, error) {
	prev := v.size
	cells := v.cells()
	for x := range seq {
		if v.size == len(cells) {
			v.ShrinkTo(prev)
			return 0, fmt.Errorf("%w: sequence longer than %d free cells", ErrCapacityExceeded, len(cells)-prev)
		}
		cells[v.size].Put(x)
		v.size++
	}
	return v.size - prev, nil
}

// rotateIn moves the n elements at the tail of v to index at, keeping the order of both
// the moved block and the elements it jumps over.
func (v *Vector[T, S]) rotateIn(at, n int) {
	s := v.cells()[at:v.size]
	k := len(s) - n
	if n == 0 || k == 0 {
		return
	}
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

// Insert places x before pos and returns an iterator to it.
//
// The element is appended and then rotated into place, so on failure v is unchanged.
func (v *Vector[T, S]) Insert(pos Iterator[T], x T) (Iterator[T], error) {
	at, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	if _, err := v.PushBack(x); err != nil {
		return pos, err
	}
	v.rotateIn(at, 1)
	return Iterator[T]{cells: v.cells(), pos: at}, nil
}

// InsertN places count copies of x before pos and returns an iterator to the first of them,
// or pos if count is zero.
func (v *Vector[T, S]) InsertN(pos Iterator[T], count int, x T) (Iterator[T], error) {
	at, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	if err := v.AppendN(count, x); err != nil {
		return pos, err
	}
	v.rotateIn(at, count)
	return Iterator[T]{cells: v.cells(), pos: at}, nil
}

// InsertSlice places a copy of src before pos and returns an iterator to the first
// inserted element, or pos if src is empty.
func (v *Vector[T, S]) InsertSlice(pos Iterator[T], src []T) (Iterator[T], error) {
	at, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	if err := v.Append(src...); err != nil {
		return pos, err
	}
	v.rotateIn(at, len(src))
	return Iterator[T]{cells: v.cells(), pos: at}, nil
}

// InsertSeq places the elements of seq before pos and returns an iterator to the first
// inserted element, or pos if seq is empty.
func (v *Vector[T, S]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	at, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	n, err := v.AppendSeq(seq)
	if err != nil {
		return pos, err
	}
	v.rotateIn(at, n)
	return Iterator[T]{cells: v.cells(), pos: at}, nil
}

// Erase removes the element at pos and returns an iterator to the element that followed
// it, or End().
func (v *Vector[T, S]) Erase(pos Iterator[T]) (Iterator[T], error) {
	at, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	if at == v.size {
		return pos, indexError(at, v.size)
	}
	cells := v.cells()
	copy(cells[at:v.size-1], cells[at+1:v.size])
	v.PopBack()
	return Iterator[T]{cells: cells, pos: at}, nil
}

// EraseRange removes the elements in [first, last) and returns an iterator to the element
// that followed them, or End().
func (v *Vector[T, S]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	from, err := v.position(first)
	if err != nil {
		return first, err
	}
	to, err := v.position(last)
	if err != nil {
		return first, err
	}
	if to < from {
		return first, fmt.Errorf("%w: range [%d, %d)", ErrIndexOutOfRange, from, to)
	}
	cells := v.cells()
	copy(cells[from:], cells[to:v.size])
	v.ShrinkBy(to - from)
	return Iterator[T]{cells: cells, pos: from}, nil
}
