package smallvec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// Their inline capacities may differ.
func Equal[T comparable, A Array[T], B Array[T]](a *SmallVec[T, A], b *SmallVec[T, B]) bool {
	return slices.Equal(a.AsSlice(), b.AsSlice())
}

// EqualFunc is like Equal, using eq to compare elements.
func EqualFunc[T, U any, A Array[T], B Array[U]](a *SmallVec[T, A], b *SmallVec[U, B], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.AsSlice(), b.AsSlice(), eq)
}

// Compare compares the elements of a and b lexicographically, as
// slices.Compare does.
func Compare[T cmp.Ordered, A Array[T]](a, b *SmallVec[T, A]) int {
	return slices.Compare(a.AsSlice(), b.AsSlice())
}
