package smallvec

import "unsafe"

// Array is the set of fixed-size array types that can serve as the inline
// buffer of a SmallVec. The array length is the number of elements the
// vector holds before it spills to the heap.
type Array[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[20]T | ~[24]T | ~[32]T | ~[36]T |
		~[0x40]T | ~[0x80]T | ~[0x100]T | ~[0x200]T | ~[0x400]T | ~[0x800]T |
		~[0x1000]T | ~[0x2000]T | ~[0x4000]T | ~[0x8000]T |
		~[0x10000]T | ~[0x20000]T | ~[0x40000]T | ~[0x80000]T | ~[0x100000]T
}

// asSlice views the array behind a as a []T of length len(A). The slice
// aliases a, so it is only valid while a is.
func asSlice[T any, A Array[T]](a *A) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(a)), len(*a))
}
