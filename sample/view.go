// Package sample provides read-only views over sample sequences.
package sample

// View is a read-only, fixed-length view over a sequence of samples.
//
// A View never owns its backing array. The caller keeps the array valid and
// unmodified for as long as the view is in use.
type View struct {
	data []float64
}

// From wraps data without copying.
func From(data []float64) View {
	return View{data: data}
}

// Slice returns the borrowed backing sequence. Callers must not modify it.
func (v View) Slice() []float64 {
	return v.data
}

// Len returns the number of samples in the view.
func (v View) Len() int {
	return len(v.data)
}

// At returns the sample at position i. ok is false when i is out of range.
func (v View) At(i int) (x float64, ok bool) {
	if i < 0 || i >= len(v.data) {
		return 0, false
	}
	return v.data[i], true
}

// Sum adds the samples strictly left to right.
//
// The accumulation is deliberately naive (no pairwise or compensated
// summation, no unrolling) so results are bit-identical across platforms.
func (v View) Sum() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Split partitions the view into at most n contiguous sub-views that cover
// it in order. Sub-views share the backing array.
func (v View) Split(n int) []View {
	if n <= 1 || len(v.data) <= 1 {
		return []View{v}
	}

	n = min(n, len(v.data))
	size := (len(v.data) + n - 1) / n
	parts := make([]View, 0, n)
	for start := 0; start < len(v.data); start += size {
		end := min(start+size, len(v.data))
		parts = append(parts, View{data: v.data[start:end:end]})
	}

	return parts
}
