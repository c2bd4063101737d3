package smallvec

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *SmallVec[T, A]) Utilization() float64 {
	_, n, c := v.triple()
	if c == 0 {
		return 0
	}
	return float64(n) / float64(c)
}

// HeapBytes returns the size in bytes of the heap buffer, or 0 while the
// vector is inline.
func (v *SmallVec[T, A]) HeapBytes() int {
	if !v.Spilled() {
		return 0
	}
	return v.capacity * int(elemSize[T]())
}

// Metrics returns a snapshot of vector statistics.
func (v *SmallVec[T, A]) Metrics() VecMetrics {
	_, n, c := v.triple()
	return VecMetrics{
		Len:            n,
		Capacity:       c,
		InlineCapacity: v.InlineSize(),
		Spilled:        v.Spilled(),
		ElemSize:       int(elemSize[T]()),
		HeapBytes:      v.HeapBytes(),
		Utilization:    v.Utilization(),
	}
}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len            int     // Live elements
	Capacity       int     // Elements the vector can hold without reallocating
	InlineCapacity int     // Elements the vector can hold before spilling
	Spilled        bool    // Whether the elements live on the heap
	ElemSize       int     // Size of one element in bytes
	HeapBytes      int     // Size of the heap buffer in bytes, 0 while inline
	Utilization    float64 // Ratio of Len to Capacity (0.0-1.0)
}
