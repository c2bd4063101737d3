package smallvec

import (
	"fmt"
	"iter"
	"unsafe"
)

// FromBuf returns a vector that adopts buf as its inline storage, with every
// slot live.
func FromBuf[T any, A Array[T]](buf A) *SmallVec[T, A] {
	return &SmallVec[T, A]{capacity: len(buf), inline: buf}
}

// FromBufAndLen returns a vector that adopts buf as its inline storage with
// the first n slots live. The remaining slots are cleared. It panics if n
// exceeds len(buf).
func FromBufAndLen[T any, A Array[T]](buf A, n int) *SmallVec[T, A] {
	if n < 0 || n > len(buf) {
		panicIndex("FromBufAndLen", n, len(buf)+1)
	}
	v := &SmallVec[T, A]{capacity: n, inline: buf}
	clear(asSlice[T](&v.inline)[n:])
	return v
}

// FromRawParts returns a spilled vector that adopts the heap buffer of
// capacity elements starting at ptr, of which the first length are live.
//
// This is unsafe: ptr must point to a buffer of at least capacity elements
// of type T that nothing else will use again, typically one obtained from
// RawParts. FromRawParts panics if capacity does not exceed the inline
// capacity, since such a vector could not tell its storage apart from
// inline storage.
func FromRawParts[T any, A Array[T]](ptr *T, length, capacity int) *SmallVec[T, A] {
	v := New[T, A]()
	if capacity <= len(v.inline) {
		panic(fmt.Sprintf("smallvec: FromRawParts capacity %d does not exceed inline capacity %d", capacity, len(v.inline)))
	}
	if length < 0 || length > capacity {
		panicIndex("FromRawParts", length, capacity+1)
	}
	if ptr == nil {
		panic("smallvec: FromRawParts of nil pointer")
	}
	v.heap = unsafe.Slice(ptr, capacity)
	v.heapLen, v.capacity = length, capacity
	return v
}

// RawParts returns a pointer to the first slot of the active buffer, the
// length and the capacity. For a spilled vector they can be handed to
// FromRawParts, after which the vector they came from must not be used
// again. ptr is nil if the capacity is zero.
func (v *SmallVec[T, A]) RawParts() (ptr *T, length, capacity int) {
	buf, n, c := v.triple()
	if c == 0 {
		return nil, n, c
	}
	return &buf[0], n, c
}

// FromVec returns a vector holding the elements of s. If cap(s) fits
// inline the elements are moved into inline storage; otherwise the backing
// array of s is adopted as the heap buffer without copying. Either way the
// vector owns the elements and s must not be used again.
func FromVec[T any, A Array[T]](s []T) *SmallVec[T, A] {
	v := New[T, A]()
	if cap(s) <= len(v.inline) {
		v.capacity = moveElems(asSlice[T](&v.inline), s)
		return v
	}
	full := s[:cap(s)]
	clear(full[len(s):])
	v.heap, v.heapLen, v.capacity = full, len(s), cap(s)
	return v
}

// IntoVec moves the elements out into a slice. A spilled vector hands over
// its heap buffer without copying; an inline one copies. The vector is
// empty and inline afterwards.
func (v *SmallVec[T, A]) IntoVec() []T {
	if v.Spilled() {
		s := v.heap[:v.heapLen]
		v.heap, v.heapLen, v.capacity = nil, 0, 0
		return s
	}
	s := make([]T, v.capacity)
	moveElems(s, asSlice[T](&v.inline)[:v.capacity])
	v.capacity = 0
	return s
}

// IntoInner moves the elements out as an A. It succeeds only if the vector
// is inline and full; otherwise it reports false and leaves the vector as
// it was.
func (v *SmallVec[T, A]) IntoInner() (A, bool) {
	if v.Spilled() || v.capacity != len(v.inline) {
		var zero A
		return zero, false
	}
	a := v.inline
	clear(asSlice[T](&v.inline))
	v.capacity = 0
	return a, true
}

// FromSlice returns a vector holding clones of the elements of s, sized
// exactly to len(s) if they do not fit inline.
func FromSlice[T any, A Array[T]](s []T) *SmallVec[T, A] {
	v := WithCapacity[T, A](len(s))
	buf, lenp, _ := v.tripleMut()
	cloneInto(buf, s)
	*lenp = len(s)
	return v
}

// FromElem returns a vector of n clones of elem.
func FromElem[T any, A Array[T]](elem T, n int) *SmallVec[T, A] {
	v := WithCapacity[T, A](n)
	v.Resize(n, elem)
	return v
}

// Collect returns a vector holding the elements produced by seq.
func Collect[T any, A Array[T]](seq iter.Seq[T]) *SmallVec[T, A] {
	return CollectHint[T, A](0, seq)
}

// CollectHint is like Collect, with hint as a lower bound on the number of
// elements seq will produce.
func CollectHint[T any, A Array[T]](hint int, seq iter.Seq[T]) *SmallVec[T, A] {
	v := New[T, A]()
	v.ExtendHint(hint, seq)
	return v
}

// Clone returns an independent vector with clones of the elements of v.
// The copy is sized to v's length, so it is only spilled if v's elements
// do not fit inline.
func (v *SmallVec[T, A]) Clone() *SmallVec[T, A] {
	src := v.AsSlice()
	c := WithCapacity[T, A](len(src))
	buf, lenp, _ := c.tripleMut()
	cloneInto(buf, src)
	*lenp = len(src)
	return c
}
