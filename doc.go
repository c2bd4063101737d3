// Package smallvec implements a growable sequence with inline storage for Go.
//
// # Overview
//
// A SmallVec stores a small, fixed number of elements directly inside its
// own footprint and moves them to a separately allocated buffer only once
// that number is exceeded. For workloads where most sequences are short
// this avoids allocator traffic and keeps the elements next to the data
// that owns them:
//
//   - Token or operand lists that rarely exceed a handful of entries
//   - Per-node child lists in trees and graphs
//   - Scratch buffers built up inside hot loops
//
// # Basic Usage
//
// The inline capacity is the length of the array type argument:
//
//	var v smallvec.SmallVec[int, [4]int] // zero value is ready to use
//	v.Push(1)
//	v.Push(2)
//	v.Spilled() // false: the elements live inline
//
//	for i := range 10 {
//		v.Push(i)
//	}
//	v.Spilled() // true: the elements moved to a heap buffer
//
//	v.Truncate(3)
//	v.ShrinkToFit() // moves the elements back inline
//
// Constructors return pointers:
//
//	w := smallvec.FromSlice[string, [8]string]([]string{"a", "b"})
//	u := smallvec.WithCapacity[byte, [32]byte](128)
//
// # Storage
//
// A single field tells which storage is active. While it is no larger than
// the inline capacity it is the length of the vector; once the vector has
// spilled it is the capacity of the heap buffer. A vector spills only when
// Grow, Reserve or ReserveExact (directly or through Push, Insert and the
// other growing operations) asks for more than the inline capacity. Grow
// and ShrinkToFit move a spilled vector back inline when its elements fit;
// Release, IntoVec, IntoIter and Consume leave it empty and inline.
//
// Capacity grows to the next power of two on Reserve (and so on Push),
// saturating rather than overflowing. ReserveExact grows to exactly the
// requested size and panics on overflow; TryReserve and TryReserveExact
// report failures as errors instead.
//
// # Ownership
//
// A vector owns its elements. Elements that the vector destroys, through
// Truncate, Clear, Retain, DedupBy, Release or an abandoned IntoIter or
// Drain, are dropped: their slot is zeroed, and if the element type
// implements Dropper its Drop method runs exactly once. Elements returned to
// the caller by Pop, Remove or iteration are not dropped.
//
// InsertMany keeps this guarantee even if the sequence it consumes panics
// part way through, and IntoIter and Drain drop the elements a loop did not
// reach when the loop breaks or panics.
//
// # Thread Safety
//
// A SmallVec is not safe for concurrent use. Hand the whole vector to
// another goroutine, or guard it externally. A SmallVec must not be copied
// after first use: the copy would share the heap buffer. Use Clone.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Spilled: %v\n", m.Spilled)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Heap bytes: %d\n", m.HeapBytes)
package smallvec
