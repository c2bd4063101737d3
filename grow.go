package smallvec

import (
	"fmt"
	"math/bits"
)

// Grow sets the capacity to max(newCap, InlineSize()). A spilled vector
// whose new capacity fits inline moves its elements back into inline
// storage and lets go of the heap buffer. Grow panics if newCap is smaller
// than Len.
func (v *SmallVec[T, A]) Grow(newCap int) {
	if err := v.TryGrow(newCap); err != nil {
		panic(err)
	}
}

// TryGrow is like Grow but returns an error instead of panicking: a
// *GrowError if newCap is below Len, or ErrCapacityOverflow if a buffer of
// newCap elements is not representable.
func (v *SmallVec[T, A]) TryGrow(newCap int) error {
	buf, n, c := v.triple()
	if newCap < n {
		return &GrowError{Requested: newCap, Len: n}
	}
	spilled := v.Spilled()

	if newCap <= len(v.inline) {
		if !spilled {
			return nil
		}
		v.capacity = n
		moveElems(asSlice[T](&v.inline), buf[:n])
		v.heap, v.heapLen = nil, 0
		return nil
	}

	if newCap == c {
		return nil
	}
	if !bufferFits[T](newCap) {
		return fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, newCap, elemSize[T]())
	}
	next := allocBuffer[T](newCap)
	moveElems(next, buf[:n])
	v.heap, v.heapLen, v.capacity = next, n, newCap
	return nil
}

// Reserve makes room for at least additional more elements. When it has
// to reallocate, the new capacity is the next power of two of
// Len()+additional, saturating at the largest representable capacity
// rather than overflowing.
func (v *SmallVec[T, A]) Reserve(additional int) {
	if err := v.TryReserve(additional); err != nil {
		panic(err)
	}
}

// TryReserve is like Reserve but returns an error if the saturated
// capacity cannot be allocated.
func (v *SmallVec[T, A]) TryReserve(additional int) error {
	if additional < 0 {
		panicNegative("Reserve", additional)
	}
	_, n, c := v.triple()
	if c-n >= additional {
		return nil
	}
	return v.TryGrow(nextCapacity(n, additional))
}

// ReserveExact makes room for exactly additional more elements. Unlike
// Reserve it does not round up, and it panics with ErrCapacityOverflow if
// Len()+additional overflows.
func (v *SmallVec[T, A]) ReserveExact(additional int) {
	if err := v.TryReserveExact(additional); err != nil {
		panic(err)
	}
}

// TryReserveExact is like ReserveExact but returns the overflow as an
// error.
func (v *SmallVec[T, A]) TryReserveExact(additional int) error {
	if additional < 0 {
		panicNegative("ReserveExact", additional)
	}
	_, n, c := v.triple()
	if c-n >= additional {
		return nil
	}
	if n > maxCapacity-additional {
		return overflowError(n, additional)
	}
	return v.TryGrow(n + additional)
}

// ShrinkToFit reduces the capacity as far as possible. A spilled vector
// whose elements fit inline is moved back to inline storage.
func (v *SmallVec[T, A]) ShrinkToFit() {
	if !v.Spilled() {
		return
	}
	v.Grow(v.heapLen)
}

// nextCapacity returns the power of two at or above n+additional, or
// maxCapacity if there is none.
func nextCapacity(n, additional int) int {
	want := n + additional
	if want < n || want > 1<<(bits.UintSize-2) {
		return maxCapacity
	}
	if want <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(want-1))
}
