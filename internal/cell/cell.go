// Package cell provides the storage slot shared by the fixed-capacity vector and its iterators.
//
// A Cell holds at most one value. It keeps no record of whether it is occupied: the owning
// container's size counter is the only authority on occupancy, and every method here assumes
// the caller already knows the answer.
//
// # Released state
//
// A released cell holds the zero value of T. Go has no destructors, so releasing a value means
// overwriting it with the zero value; this drops any references the value held and lets the
// garbage collector reclaim them even though the slot itself stays inline in its owner.
package cell

// Cell is one inline slot able to hold a single T.
type Cell[T any] struct {
	v T
}

// Construct builds a value in place by handing the slot to init.
//
// If init fails the slot is reset to the zero value and the error is returned unchanged. No
// teardown runs on the partially built value: it never became a live object.
func (c *Cell[T]) Construct(init func(*T) error) error {
	if err := init(&c.v); err != nil {
		var zero T
		c.v = zero
		return err
	}
	return nil
}

// Put constructs the slot from x.
func (c *Cell[T]) Put(x T) {
	c.v = x
}

// Destroy releases the value held by the slot.
func (c *Cell[T]) Destroy() {
	var zero T
	c.v = zero
}

// Value returns a pointer to the held value. The slot must be occupied.
func (c *Cell[T]) Value() *T {
	return &c.v
}

// Get returns a copy of the held value. The slot must be occupied.
func (c *Cell[T]) Get() T {
	return c.v
}

// Take moves the value out, leaving the zero value behind. The slot is still counted as
// occupied by its owner; releasing it remains the owner's job.
func (c *Cell[T]) Take() T {
	x := c.v
	var zero T
	c.v = zero
	return x
}

// ReleaseAll releases cells highest index first.
func ReleaseAll[T any](cells []Cell[T]) {
	for i := len(cells) - 1; i >= 0; i-- {
		cells[i].Destroy()
	}
}
