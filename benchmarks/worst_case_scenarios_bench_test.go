package smallvec_test

import (
	"slices"
	"testing"

	"github.com/pavanmanishd/smallvec"
)

// BenchmarkWorstCaseScenarios tests scenarios where a SmallVec might perform poorly
// These benchmarks help identify when NOT to use inline storage
func BenchmarkWorstCaseScenarios(b *testing.B) {

	// Scenario 1: Oscillating around the inline capacity
	// Every ShrinkToFit moves the elements back inline and the next push spills again
	b.Run("SpillThrash", func(b *testing.B) {
		b.ReportAllocs()
		var v smallvec.SmallVec[int, [8]int]
		for i := 0; i < b.N; i++ {
			for v.Len() <= 8 {
				v.Push(i)
			}
			v.Truncate(4)
			v.ShrinkToFit()
		}
	})

	// Scenario 2: Large inline buffers that are mostly empty
	// The whole inline array is copied on every move of the value
	b.Run("OversizedInline", func(b *testing.B) {
		b.Run("SmallVec_1024", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := smallvec.New[int, [0x400]int]()
				v.Push(i)
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s := make([]int, 0, 1)
				s = append(s, i)
				_ = s
			}
		})
	})

	// Scenario 3: Front insertion and removal shift every element
	b.Run("FrontInsertRemove", func(b *testing.B) {
		v := smallvec.New[int, [16]int]()
		for j := 0; j < 512; j++ {
			v.Push(j)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Insert(0, i)
			v.Remove(0)
		}
	})

	// Scenario 4: InsertMany with an unknown count
	// Without a hint each element after the first shifts the tail again
	b.Run("InsertManyNoHint", func(b *testing.B) {
		src := make([]int, 64)
		b.Run("NoHint", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := smallvec.FromSlice[int, [8]int](src)
				v.InsertMany(1, slices.Values(src))
			}
		})

		b.Run("Hint", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := smallvec.FromSlice[int, [8]int](src)
				v.InsertManyHint(1, len(src), slices.Values(src))
			}
		})
	})
}
