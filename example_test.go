package smallvec

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Example demonstrates basic vector usage
func Example() {
	// The zero value is an empty vector with room for four ints inline
	var v SmallVec[int, [4]int]
	defer v.Release()

	for i := range 3 {
		v.Push(i * 10)
	}
	fmt.Printf("Len: %d, Cap: %d, Spilled: %v\n", v.Len(), v.Cap(), v.Spilled())

	// The fifth element moves everything to the heap
	for i := 3; i < 6; i++ {
		v.Push(i * 10)
	}
	fmt.Printf("Len: %d, Cap: %d, Spilled: %v\n", v.Len(), v.Cap(), v.Spilled())

	// Shrinking below the inline capacity moves the elements back
	v.Truncate(2)
	v.ShrinkToFit()
	fmt.Printf("Len: %d, Cap: %d, Spilled: %v\n", v.Len(), v.Cap(), v.Spilled())
	fmt.Println(v.String())

	// Output:
	// Len: 3, Cap: 4, Spilled: false
	// Len: 6, Cap: 8, Spilled: true
	// Len: 2, Cap: 4, Spilled: false
	// [0 10]
}

// ExampleSmallVec_InsertMany demonstrates splicing a sequence into the middle
func ExampleSmallVec_InsertMany() {
	v := FromSlice[int, [8]int]([]int{1, 2, 5, 6})
	v.InsertMany(2, slices.Values([]int{3, 4}))
	fmt.Println(v)

	// Output:
	// [1 2 3 4 5 6]
}

// ExampleSmallVec_Retain demonstrates filtering in place
func ExampleSmallVec_Retain() {
	v := FromSlice[int, [4]int]([]int{1, 2, 3, 4, 5, 6})
	v.Retain(func(x int) bool { return x%2 == 0 })

	// Retain never shrinks the buffer
	fmt.Println(v, v.Spilled())

	// Output:
	// [2 4 6] true
}

// ExampleDedup demonstrates removing consecutive duplicates
func ExampleDedup() {
	v := FromSlice[int, [8]int]([]int{1, 1, 2, 3, 3, 3, 1})
	Dedup(v)
	fmt.Println(v)

	// Output:
	// [1 2 3 1]
}

// ExampleSmallVec_Consume demonstrates moving elements out with a range loop
func ExampleSmallVec_Consume() {
	v := FromSlice[string, [2]string]([]string{"a", "b", "c"})
	for s := range v.Consume() {
		if s == "b" {
			break // "b" and "c" are dropped
		}
		fmt.Println(s)
	}
	fmt.Println("Left behind:", v.Len())

	// Output:
	// a
	// Left behind: 0
}

// ExampleSmallVec_Drain demonstrates taking elements from both ends
func ExampleSmallVec_Drain() {
	v := FromSlice[int, [4]int]([]int{1, 2, 3})
	d := v.Drain()
	last, _ := d.NextBack()
	first, _ := d.Next()
	d.Close()

	// The vector keeps its capacity
	fmt.Println(first, last, v.Len(), v.Cap())

	// Output:
	// 1 3 0 4
}

// ExampleNewWriter demonstrates formatting into inline storage
func ExampleNewWriter() {
	var v SmallVec[byte, [32]byte]
	fmt.Fprintf(NewWriter(&v), "id=%d name=%s", 7, "seven")
	fmt.Println(string(v.AsSlice()), v.Spilled())

	// Output:
	// id=7 name=seven false
}

// ExampleSmallVec_MarshalJSON demonstrates JSON encoding
func ExampleSmallVec_MarshalJSON() {
	data, err := json.Marshal(FromSlice[int, [4]int]([]int{1, 2, 3}))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))

	var v SmallVec[int, [2]int]
	if err := json.Unmarshal([]byte(`[4, 5, 6]`), &v); err != nil {
		panic(err)
	}
	fmt.Println(v.AsSlice(), v.Spilled())

	// Output:
	// [1,2,3]
	// [4 5 6] true
}

// ExampleVecMetrics demonstrates monitoring a vector
func ExampleVecMetrics() {
	var v SmallVec[int64, [4]int64]
	for i := range 5 {
		v.Push(int64(i))
	}

	metrics := v.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Len: %d\n", metrics.Len)
	fmt.Printf("  Capacity: %d\n", metrics.Capacity)
	fmt.Printf("  Inline capacity: %d\n", metrics.InlineCapacity)
	fmt.Printf("  Spilled: %v\n", metrics.Spilled)
	fmt.Printf("  Heap bytes: %d\n", metrics.HeapBytes)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Len: 5
	//   Capacity: 8
	//   Inline capacity: 4
	//   Spilled: true
	//   Heap bytes: 64
	//   Utilization: 62.5%
}
