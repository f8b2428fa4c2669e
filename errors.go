package staticvec

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded = errors.New("staticvec: capacity exceeded")
	ErrIndexOutOfRange  = errors.New("staticvec: index out of range")
	ErrInvalidCount     = errors.New("staticvec: invalid count")
)

func capacityError(want, capacity int) error {
	return fmt.Errorf("%w: need %d, capacity %d", ErrCapacityExceeded, want, capacity)
}

func indexError(index, size int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, size)
}

func countError(count int) error {
	return fmt.Errorf("%w: %d", ErrInvalidCount, count)
}

func elementError(index int, err error) error {
	return fmt.Errorf("construct element %d: %w", index, err)
}
