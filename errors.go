package smallvec

import (
	"errors"
	"fmt"
)

// ErrCapacityOverflow is returned by the Try* growth methods when the
// requested capacity cannot be represented.
var ErrCapacityOverflow = errors.New("smallvec: capacity overflow")

// GrowError is returned by TryGrow when the requested capacity is smaller
// than the number of live elements.
type GrowError struct {
	Requested int
	Len       int
}

func (e *GrowError) Error() string {
	return fmt.Sprintf("smallvec: cannot grow to capacity %d below length %d", e.Requested, e.Len)
}

func overflowError(length, additional int) error {
	return fmt.Errorf("%w: len %d + additional %d", ErrCapacityOverflow, length, additional)
}

// panicIndex reports an out-of-range index for the named operation.
func panicIndex(op string, index, limit int) {
	panic(fmt.Sprintf("smallvec: %s index %d out of range [0:%d]", op, index, limit))
}

// panicNegative reports a negative count passed to the named operation.
func panicNegative(op string, n int) {
	panic(fmt.Sprintf("smallvec: %s with negative count %d", op, n))
}
