package smallvec

import (
	"fmt"
	"math"
)

// maxCapacity is the largest capacity a vector can report.
const maxCapacity = math.MaxInt

// SmallVec is a growable sequence of T that stores up to len(A) elements in
// its own footprint and spills to a separately allocated buffer beyond
// that. Not goroutine-safe.
//
// The zero value is an empty inline vector ready to use. A SmallVec owns its
// heap buffer exclusively, so it must not be copied once it is in use; use
// Clone for an independent copy.
type SmallVec[T any, A Array[T]] struct {
	// capacity selects the storage variant. If capacity <= len(A), the inline
	// variant is active and capacity holds the current length. Otherwise the
	// heap variant is active and capacity holds the size of heap.
	capacity int
	inline   A
	heap     []T // spilled buffer, len(heap) == capacity; nil while inline
	heapLen  int // live elements in heap
}

// New returns an empty inline vector.
func New[T any, A Array[T]]() *SmallVec[T, A] {
	return &SmallVec[T, A]{}
}

// WithCapacity returns an empty vector able to hold at least n elements.
// A heap buffer is only allocated when n exceeds the inline capacity.
func WithCapacity[T any, A Array[T]](n int) *SmallVec[T, A] {
	v := New[T, A]()
	v.ReserveExact(n)
	return v
}

// InlineSize returns the number of elements the vector can hold inline.
func (v *SmallVec[T, A]) InlineSize() int {
	return len(v.inline)
}

// Spilled reports whether the elements live in a heap buffer.
func (v *SmallVec[T, A]) Spilled() bool {
	return v.capacity > len(v.inline)
}

// triple returns the active buffer, the length and the capacity, all
// derived from a single read of the discriminant. buf always has length
// capacity; only buf[:length] holds live elements.
func (v *SmallVec[T, A]) triple() (buf []T, length, capacity int) {
	if v.capacity > len(v.inline) {
		return v.heap, v.heapLen, v.capacity
	}
	return asSlice[T](&v.inline), v.capacity, len(v.inline)
}

// tripleMut is triple with a pointer to wherever the length is stored, so
// callers can update it without re-deriving the variant.
func (v *SmallVec[T, A]) tripleMut() (buf []T, lenp *int, capacity int) {
	if v.capacity > len(v.inline) {
		return v.heap, &v.heapLen, v.capacity
	}
	return asSlice[T](&v.inline), &v.capacity, len(v.inline)
}

// Len returns the number of elements in the vector.
func (v *SmallVec[T, A]) Len() int {
	_, n, _ := v.triple()
	return n
}

// IsEmpty reports whether the vector has no elements.
func (v *SmallVec[T, A]) IsEmpty() bool {
	return v.Len() == 0
}

// Cap returns the number of elements the vector can hold without
// reallocating.
func (v *SmallVec[T, A]) Cap() int {
	_, _, c := v.triple()
	return c
}

// AsSlice returns the live elements. The slice aliases the vector's storage
// and is invalidated by the next call that changes the vector's length or
// capacity.
func (v *SmallVec[T, A]) AsSlice() []T {
	buf, n, _ := v.triple()
	return buf[:n:n]
}

// At returns the element at index i. It panics if i is out of range.
func (v *SmallVec[T, A]) At(i int) T {
	buf, n, _ := v.triple()
	if i < 0 || i >= n {
		panicIndex("At", i, n)
	}
	return buf[i]
}

// Set replaces the element at index i. The previous value is overwritten,
// not dropped. It panics if i is out of range.
func (v *SmallVec[T, A]) Set(i int, value T) {
	buf, n, _ := v.triple()
	if i < 0 || i >= n {
		panicIndex("Set", i, n)
	}
	buf[i] = value
}

// Swap exchanges the elements at indexes i and j.
func (v *SmallVec[T, A]) Swap(i, j int) {
	buf, n, _ := v.triple()
	if i < 0 || i >= n {
		panicIndex("Swap", i, n)
	}
	if j < 0 || j >= n {
		panicIndex("Swap", j, n)
	}
	buf[i], buf[j] = buf[j], buf[i]
}

// SetLen overrides the length without touching the buffer. Growing the
// length exposes whatever the extra slots hold: the zero value, unless the
// caller wrote there or a Drain was abandoned without Close, in which case
// the elements it did not hand out are still in place. Shrinking the length
// forgets elements without dropping them. It panics if n is negative or
// exceeds Cap.
func (v *SmallVec[T, A]) SetLen(n int) {
	_, lenp, c := v.tripleMut()
	if n < 0 || n > c {
		panicIndex("SetLen", n, c)
	}
	*lenp = n
}

// Release destroys the vector's contents: every live element is dropped
// and a heap buffer, if any, is let go. The vector is empty and inline
// afterwards and may be reused.
func (v *SmallVec[T, A]) Release() {
	if v.Spilled() {
		live := v.heap[:v.heapLen]
		v.heap, v.heapLen, v.capacity = nil, 0, 0
		dropElems(live)
		return
	}
	live := asSlice[T](&v.inline)[:v.capacity]
	v.capacity = 0
	dropElems(live)
}

// String formats the live elements like a slice.
func (v *SmallVec[T, A]) String() string {
	return fmt.Sprint(v.AsSlice())
}
