package smallvec

import (
	"math/bits"
	"reflect"
	"unsafe"
)

// Dropper is implemented by element types that hold something which must
// be released when the vector discards the element. Drop is called exactly
// once for every element the vector destroys (Truncate, Clear, Retain,
// DedupBy, Release, abandoned iterators and so on). Elements handed back to
// the caller, by Pop or by iteration, are not dropped.
//
// Drop must be in the method set of T itself; a pointer receiver on a
// non-pointer T is not seen.
type Dropper interface {
	Drop()
}

// Cloner is implemented by element types whose copies must not share
// state. Clone, FromSlice, FromElem and Resize use it when present and fall
// back to a plain Go copy otherwise.
type Cloner[T any] interface {
	Clone() T
}

var dropperType = reflect.TypeFor[Dropper]()

// needsDrop reports whether discarding a T can have an observable effect
// beyond zeroing its slot.
func needsDrop[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() == reflect.Interface || t.Implements(dropperType)
}

// clonerFor returns the function used to duplicate elements of type T, or
// nil if a plain copy will do.
func clonerFor[T any]() func(T) T {
	if reflect.TypeFor[T]().Implements(reflect.TypeFor[Cloner[T]]()) {
		return func(x T) T { return any(x).(Cloner[T]).Clone() }
	}
	return nil
}

// cloneInto copies src to the front of dst, cloning each element when T
// asks for it.
func cloneInto[T any](dst, src []T) {
	clone := clonerFor[T]()
	if clone == nil {
		copy(dst, src)
		return
	}
	for i, x := range src {
		dst[i] = clone(x)
	}
}

// elemSize returns the in-memory size of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// bufferFits reports whether a buffer of n elements of type T has a byte
// size that is representable.
func bufferFits[T any](n int) bool {
	hi, lo := bits.Mul(uint(n), uint(elemSize[T]()))
	return hi == 0 && lo <= uint(maxCapacity)
}

// allocBuffer returns a zeroed heap buffer with room for exactly n elements.
func allocBuffer[T any](n int) []T {
	return make([]T, n)
}

// moveElems relocates src to the front of dst and zeroes src, so each
// element is reachable from exactly one place afterwards. dst and src must
// not overlap.
func moveElems[T any](dst, src []T) int {
	n := copy(dst, src)
	clear(src[:n])
	return n
}

// overlaps reports whether a and b share any memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := elemSize[T]()
	if size == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&a[0])) <= uintptr(unsafe.Pointer(&b[len(b)-1]))+(size-1) &&
		uintptr(unsafe.Pointer(&b[0])) <= uintptr(unsafe.Pointer(&a[len(a)-1]))+(size-1)
}

// take moves the value out of *p, leaving the zero value behind.
func take[T any](p *T) T {
	x := *p
	var zero T
	*p = zero
	return x
}

// dropOne destroys the element at *p. The slot is emptied before Drop runs
// so that a panicking Drop cannot cause a second drop of the same value.
func dropOne[T any](p *T) {
	x := take(p)
	if d, ok := any(x).(Dropper); ok {
		d.Drop()
	}
}

// dropElems destroys every element of s, last to first.
func dropElems[T any](s []T) {
	if !needsDrop[T]() {
		clear(s)
		return
	}
	for i := len(s) - 1; i >= 0; i-- {
		dropOne(&s[i])
	}
}
