package smallvec

import "iter"

// All returns an iterator over the index-value pairs of the vector, front
// to back. The vector must not be modified while the iterator is in use.
func (v *SmallVec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.AsSlice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the vector, front to
// back.
func (v *SmallVec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.AsSlice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over the index-value pairs of the vector,
// back to front.
func (v *SmallVec[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.AsSlice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// cursor hands out the elements of buf[front:back] by value, from either
// end. Every slot it hands out or drops is zeroed, so each element leaves
// exactly once.
type cursor[T any] struct {
	buf         []T
	front, back int
}

// Next removes and returns the front element, or reports false when none
// are left.
func (c *cursor[T]) Next() (T, bool) {
	if c.front == c.back {
		var zero T
		return zero, false
	}
	c.front++
	return take(&c.buf[c.front-1]), true
}

// NextBack removes and returns the back element, or reports false when none
// are left.
func (c *cursor[T]) NextBack() (T, bool) {
	if c.front == c.back {
		var zero T
		return zero, false
	}
	c.back--
	return take(&c.buf[c.back]), true
}

// Len returns the number of elements not yet handed out.
func (c *cursor[T]) Len() int {
	return c.back - c.front
}

// AsSlice returns the elements not yet handed out.
func (c *cursor[T]) AsSlice() []T {
	return c.buf[c.front:c.back:c.back]
}

// Close drops every element not yet handed out. It is safe to call more
// than once.
func (c *cursor[T]) Close() {
	rest := c.buf[c.front:c.back]
	c.front = c.back
	dropElems(rest)
}

// All returns an iterator over the remaining elements, front to back. When
// the loop finishes, breaks or panics, the elements it did not reach are
// dropped.
func (c *cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer c.Close()
		for {
			x, ok := c.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// IntoIter owns the former contents of a vector and hands them out by
// value. Elements that are never taken are dropped by Close.
type IntoIter[T any, A Array[T]] struct {
	cursor[T]
	data SmallVec[T, A]
}

// IntoIter moves the vector's storage into a consuming iterator. The
// vector is empty, inline and reusable on return; the iterator is now
// responsible for every element.
func (v *SmallVec[T, A]) IntoIter() *IntoIter[T, A] {
	it := &IntoIter[T, A]{data: *v}
	*v = SmallVec[T, A]{}
	buf, lenp, _ := it.data.tripleMut()
	n := *lenp
	*lenp = 0
	it.cursor = cursor[T]{buf: buf, back: n}
	return it
}

// Consume moves the vector's contents out as a sequence, as by
// v.IntoIter().All().
func (v *SmallVec[T, A]) Consume() iter.Seq[T] {
	return v.IntoIter().All()
}

// Drain hands out the former contents of a vector by value. The vector must
// not be modified until the Drain is exhausted or closed. A Drain that is
// dropped without Close leaves the elements it did not hand out in the
// vector's dead slots, where they are neither dropped nor collected until
// overwritten.
type Drain[T any] struct {
	cursor[T]
}

// Drain empties the vector up front and returns its former contents. The
// vector keeps its capacity. Elements the caller does not take are dropped
// by Close.
func (v *SmallVec[T, A]) Drain() *Drain[T] {
	buf, lenp, _ := v.tripleMut()
	n := *lenp
	*lenp = 0
	return &Drain[T]{cursor[T]{buf: buf[:n], back: n}}
}
