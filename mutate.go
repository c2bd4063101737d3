package smallvec

import (
	"iter"
	"slices"
)

// Push appends value to the end of the vector. Amortized O(1).
func (v *SmallVec[T, A]) Push(value T) {
	_, lenp, c := v.tripleMut()
	if *lenp == c {
		v.Reserve(1)
	}
	buf, lenp, _ := v.tripleMut()
	buf[*lenp] = value
	*lenp++
}

// Pop removes the last element and returns it, or reports false if the
// vector is empty. Pop never shrinks the capacity.
func (v *SmallVec[T, A]) Pop() (T, bool) {
	buf, lenp, _ := v.tripleMut()
	if *lenp == 0 {
		var zero T
		return zero, false
	}
	*lenp--
	return take(&buf[*lenp]), true
}

// Insert places value at index, shifting the elements after it to the
// right. It panics if index > Len().
func (v *SmallVec[T, A]) Insert(index int, value T) {
	n := v.Len()
	if index < 0 || index > n {
		panicIndex("Insert", index, n+1)
	}
	v.Reserve(1)
	buf, lenp, _ := v.tripleMut()
	copy(buf[index+1:n+1], buf[index:n])
	buf[index] = value
	*lenp = n + 1
}

// Remove removes and returns the element at index, shifting the elements
// after it to the left. It panics if index >= Len().
func (v *SmallVec[T, A]) Remove(index int) T {
	buf, lenp, _ := v.tripleMut()
	n := *lenp
	if index < 0 || index >= n {
		panicIndex("Remove", index, n)
	}
	item := buf[index]
	copy(buf[index:n-1], buf[index+1:n])
	*lenp = n - 1
	var zero T
	buf[n-1] = zero
	return item
}

// SwapRemove removes and returns the element at index, moving the last
// element into its place. O(1), does not preserve order. It panics if
// index >= Len().
func (v *SmallVec[T, A]) SwapRemove(index int) T {
	buf, lenp, _ := v.tripleMut()
	n := *lenp
	if index < 0 || index >= n {
		panicIndex("SwapRemove", index, n)
	}
	buf[index], buf[n-1] = buf[n-1], buf[index]
	*lenp = n - 1
	return take(&buf[n-1])
}

// Truncate drops the elements at and after n, keeping the first n. It has
// no effect if n >= Len() and never releases capacity.
func (v *SmallVec[T, A]) Truncate(n int) {
	if n < 0 {
		panicNegative("Truncate", n)
	}
	buf, lenp, _ := v.tripleMut()
	if n >= *lenp {
		return
	}
	if !needsDrop[T]() {
		clear(buf[n:*lenp])
		*lenp = n
		return
	}
	for n < *lenp {
		*lenp--
		dropOne(&buf[*lenp])
	}
}

// Clear drops every element. The capacity is kept.
func (v *SmallVec[T, A]) Clear() {
	v.Truncate(0)
}

// Resize changes the length to n. A longer vector is filled with clones of
// fill; a shorter one is truncated. Resize takes ownership of fill, which
// is dropped if it is not stored.
func (v *SmallVec[T, A]) Resize(n int, fill T) {
	if n < 0 {
		panicNegative("Resize", n)
	}
	length := v.Len()
	if n <= length {
		v.Truncate(n)
		dropOne(&fill)
		return
	}
	v.Reserve(n - length)
	clone := clonerFor[T]()
	buf, lenp, _ := v.tripleMut()
	for *lenp < n-1 {
		if clone != nil {
			buf[*lenp] = clone(fill)
		} else {
			buf[*lenp] = fill
		}
		*lenp++
	}
	buf[*lenp] = fill
	*lenp++
}

// Extend appends every element produced by seq.
func (v *SmallVec[T, A]) Extend(seq iter.Seq[T]) {
	v.ExtendHint(0, seq)
}

// ExtendHint is like Extend, with hint as a lower bound on the number of
// elements seq will produce, used to reserve space up front.
func (v *SmallVec[T, A]) ExtendHint(hint int, seq iter.Seq[T]) {
	if hint < 0 {
		panicNegative("Extend", hint)
	}
	v.Reserve(hint)
	for x := range seq {
		v.Push(x)
	}
}

// ExtendFromSlice appends clones of the elements of s. s may be a view of
// v's own elements.
func (v *SmallVec[T, A]) ExtendFromSlice(s []T) {
	s = v.unalias(s)
	v.Reserve(len(s))
	buf, lenp, _ := v.tripleMut()
	cloneInto(buf[*lenp:], s)
	*lenp += len(s)
}

// Append moves every element of other to the end of v, leaving other empty
// with its capacity intact.
func (v *SmallVec[T, A]) Append(other *SmallVec[T, A]) {
	if other == v {
		panic("smallvec: Append of a vector to itself")
	}
	v.Reserve(other.Len())
	dst, lenp, _ := v.tripleMut()
	src, olenp, _ := other.tripleMut()
	*lenp += moveElems(dst[*lenp:], src[:*olenp])
	*olenp = 0
}

// InsertFromSlice inserts clones of the elements of s at index, shifting the
// elements after it to the right. s may be a view of v's own elements. It
// panics if index > Len().
func (v *SmallVec[T, A]) InsertFromSlice(index int, s []T) {
	n := v.Len()
	if index < 0 || index > n {
		panicIndex("InsertFromSlice", index, n+1)
	}
	s = v.unalias(s)
	v.Reserve(len(s))
	buf, lenp, _ := v.tripleMut()
	copy(buf[index+len(s):], buf[index:n])
	cloneInto(buf[index:], s)
	*lenp = n + len(s)
}

// unalias returns s, or a copy of it if it shares memory with v's buffer.
// Growing or shifting would otherwise clear or overwrite s before it is
// read.
func (v *SmallVec[T, A]) unalias(s []T) []T {
	buf, _, _ := v.triple()
	if overlaps(buf, s) {
		return slices.Clone(s)
	}
	return s
}

// InsertMany inserts the elements produced by seq at index, shifting the
// elements after it to the right. It panics if index > Len().
func (v *SmallVec[T, A]) InsertMany(index int, seq iter.Seq[T]) {
	v.InsertManyHint(index, 0, seq)
}

// InsertManyHint is like InsertMany, with hint as a lower bound on the
// number of elements seq will produce. The trailing elements are moved out
// of the way once for hint elements; extra elements shift them again one at
// a time, and a shortfall closes the gap at the end.
//
// While seq runs, Len reports index. If seq panics, the elements it already
// produced stay inserted and the trailing elements are moved back behind
// them before the panic continues, so no element is lost or held twice.
func (v *SmallVec[T, A]) InsertManyHint(index, hint int, seq iter.Seq[T]) {
	n := v.Len()
	if index < 0 || index > n {
		panicIndex("InsertMany", index, n+1)
	}
	if hint < 0 {
		panicNegative("InsertMany", hint)
	}
	if index == n {
		v.ExtendHint(hint, seq)
		return
	}

	v.Reserve(hint)
	tail := n - index
	gap := hint
	buf, lenp, _ := v.tripleMut()
	copy(buf[index+gap:], buf[index:n])
	clear(buf[index:min(index+gap, n)])
	*lenp = index

	added := 0
	defer func() {
		buf, lenp, _ := v.tripleMut()
		end := index + added
		copy(buf[end:], buf[index+gap:index+gap+tail])
		clear(buf[end+tail : index+gap+tail])
		*lenp = end + tail
	}()

	for x := range seq {
		if added == gap {
			// The tail sits past the logical length, so cover it while
			// growing or it would not be carried over.
			_, lenp, _ := v.tripleMut()
			*lenp = index + gap + tail
			v.Reserve(1)
			buf, lenp, _ := v.tripleMut()
			copy(buf[index+gap+1:], buf[index+gap:index+gap+tail])
			var zero T
			buf[index+gap] = zero
			gap++
			*lenp = index
		}
		buf, _, _ := v.tripleMut()
		buf[index+added] = x
		added++
	}
}

// Retain keeps only the elements for which keep returns true, preserving
// their order. keep is called exactly once per element, front to back; the
// rejected elements are dropped.
func (v *SmallVec[T, A]) Retain(keep func(T) bool) {
	v.RetainMut(func(p *T) bool { return keep(*p) })
}

// RetainMut is like Retain, but keep may modify the element.
func (v *SmallVec[T, A]) RetainMut(keep func(*T) bool) {
	buf, n, _ := v.triple()
	del := 0
	for i := 0; i < n; i++ {
		if !keep(&buf[i]) {
			del++
		} else if del > 0 {
			buf[i-del], buf[i] = buf[i], buf[i-del]
		}
	}
	v.Truncate(n - del)
}

// DedupBy removes all but the first of each run of consecutive elements
// for which same reports true. same receives the candidate element first
// and the last kept element second.
func (v *SmallVec[T, A]) DedupBy(same func(a, b *T) bool) {
	buf, n, _ := v.triple()
	if n <= 1 {
		return
	}
	w := 1
	for r := 1; r < n; r++ {
		if !same(&buf[r], &buf[w-1]) {
			if r != w {
				buf[r], buf[w] = buf[w], buf[r]
			}
			w++
		}
	}
	v.Truncate(w)
}

// Dedup removes consecutive equal elements.
func Dedup[T comparable, A Array[T]](v *SmallVec[T, A]) {
	v.DedupBy(func(a, b *T) bool { return *a == *b })
}

// DedupByKey removes consecutive elements that map to the same key.
func DedupByKey[T any, A Array[T], K comparable](v *SmallVec[T, A], key func(*T) K) {
	v.DedupBy(func(a, b *T) bool { return key(a) == key(b) })
}
