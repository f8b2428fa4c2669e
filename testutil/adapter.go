package testutil

import (
	"slices"

	"github.com/comalice/staticvec"
)

// SequenceAdapter is the common surface of a Vector under test and the slice-backed
// reference model. Positions are plain indices so the same randomized operation stream can
// drive both implementations.
type SequenceAdapter interface {
	Len() int
	Cap() int
	PushBack(x int) error
	PopBack()
	Insert(at, x int) error
	InsertN(at, count, x int) error
	Erase(at int) error
	EraseRange(first, last int) error
	Resize(count, x int) error
	ShrinkTo(count int)
	Clear()
	Elems() []int
}

// VectorAdapter wraps a Vector of ints.
type VectorAdapter[S staticvec.Storage[int]] struct {
	V staticvec.Vector[int, S]
}

// NewVectorAdapter creates an adapter around an empty Vector.
func NewVectorAdapter[S staticvec.Storage[int]]() *VectorAdapter[S] {
	return &VectorAdapter[S]{}
}

func (a *VectorAdapter[S]) Len() int { return a.V.Len() }
func (a *VectorAdapter[S]) Cap() int { return a.V.Cap() }

func (a *VectorAdapter[S]) PushBack(x int) error {
	_, err := a.V.PushBack(x)
	return err
}

func (a *VectorAdapter[S]) PopBack() { a.V.PopBack() }

func (a *VectorAdapter[S]) Insert(at, x int) error {
	_, err := a.V.Insert(a.V.Begin().Add(at), x)
	return err
}

func (a *VectorAdapter[S]) InsertN(at, count, x int) error {
	_, err := a.V.InsertN(a.V.Begin().Add(at), count, x)
	return err
}

func (a *VectorAdapter[S]) Erase(at int) error {
	_, err := a.V.Erase(a.V.Begin().Add(at))
	return err
}

func (a *VectorAdapter[S]) EraseRange(first, last int) error {
	_, err := a.V.EraseRange(a.V.Begin().Add(first), a.V.Begin().Add(last))
	return err
}

func (a *VectorAdapter[S]) Resize(count, x int) error { return a.V.ResizeWith(count, x) }
func (a *VectorAdapter[S]) ShrinkTo(count int)        { a.V.ShrinkTo(count) }
func (a *VectorAdapter[S]) Clear()                    { a.V.Clear() }
func (a *VectorAdapter[S]) Elems() []int              { return a.V.AppendTo([]int{}) }

// SliceModel is a reference implementation on a plain slice with a capacity limit.
// It reports the same sentinel errors as Vector.
type SliceModel struct {
	limit int
	s     []int
}

// NewSliceModel creates an empty model limited to capacity elements.
func NewSliceModel(capacity int) *SliceModel {
	return &SliceModel{limit: capacity, s: []int{}}
}

func (m *SliceModel) Len() int { return len(m.s) }
func (m *SliceModel) Cap() int { return m.limit }

func (m *SliceModel) PushBack(x int) error {
	return m.Insert(len(m.s), x)
}

func (m *SliceModel) PopBack() {
	if len(m.s) > 0 {
		m.s = m.s[:len(m.s)-1]
	}
}

func (m *SliceModel) Insert(at, x int) error {
	return m.InsertN(at, 1, x)
}

func (m *SliceModel) InsertN(at, count, x int) error {
	if at < 0 || at > len(m.s) {
		return staticvec.ErrIndexOutOfRange
	}
	if count < 0 {
		return staticvec.ErrInvalidCount
	}
	if len(m.s)+count > m.limit {
		return staticvec.ErrCapacityExceeded
	}
	m.s = slices.Insert(m.s, at, slices.Repeat([]int{x}, count)...)
	return nil
}

func (m *SliceModel) Erase(at int) error {
	if at < 0 || at >= len(m.s) {
		return staticvec.ErrIndexOutOfRange
	}
	m.s = slices.Delete(m.s, at, at+1)
	return nil
}

func (m *SliceModel) EraseRange(first, last int) error {
	if first < 0 || last > len(m.s) || first > last {
		return staticvec.ErrIndexOutOfRange
	}
	m.s = slices.Delete(m.s, first, last)
	return nil
}

func (m *SliceModel) Resize(count, x int) error {
	if count < 0 {
		return staticvec.ErrInvalidCount
	}
	if count <= len(m.s) {
		m.s = m.s[:count]
		return nil
	}
	return m.InsertN(len(m.s), count-len(m.s), x)
}

func (m *SliceModel) ShrinkTo(count int) {
	if count < len(m.s) {
		m.s = m.s[:max(count, 0)]
	}
}

func (m *SliceModel) Clear()       { m.s = m.s[:0] }
func (m *SliceModel) Elems() []int { return slices.Clone(m.s) }
