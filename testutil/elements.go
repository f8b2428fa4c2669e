// Package testutil provides element helpers and adapters shared by the staticvec test suites.
package testutil

import (
	"errors"
	"fmt"
)

// ErrInjected is returned by the failure-injecting helpers below.
var ErrInjected = errors.New("testutil: injected failure")

// Resource is an element type that owns heap memory, used to check that released cells
// drop their references.
type Resource struct {
	ID   int
	Data []byte
}

// NewResource returns a Resource with a buffer of size bytes.
func NewResource(id, size int) Resource {
	return Resource{ID: id, Data: make([]byte, size)}
}

// Sequential returns an init function that writes 0, 1, 2, ... on successive calls.
func Sequential() func(*int) error {
	next := 0
	return func(p *int) error {
		*p = next
		next++
		return nil
	}
}

// FailAfter returns an init function that succeeds n times, storing the call index, and
// fails with ErrInjected on every later call.
func FailAfter(n int) func(*int) error {
	calls := 0
	return func(p *int) error {
		if calls >= n {
			return fmt.Errorf("call %d: %w", calls, ErrInjected)
		}
		*p = calls
		calls++
		return nil
	}
}

// Scribble returns an init function that fills the Resource it is given and then fails, as a
// constructor that throws halfway would.
func Scribble() func(*Resource) error {
	return func(r *Resource) error {
		r.ID = -1
		r.Data = make([]byte, 64)
		return ErrInjected
	}
}

// CloneResource deep-copies src into dst.
func CloneResource(dst *Resource, src Resource) error {
	dst.ID = src.ID
	dst.Data = append([]byte(nil), src.Data...)
	return nil
}

// CloneFailingAt returns a clone function that fails on the element with the given ID.
func CloneFailingAt(id int) func(dst *Resource, src Resource) error {
	return func(dst *Resource, src Resource) error {
		if src.ID == id {
			return fmt.Errorf("clone %d: %w", id, ErrInjected)
		}
		return CloneResource(dst, src)
	}
}
