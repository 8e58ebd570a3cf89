// Package histogram implements fixed-width histogram binning.
//
// A Histogram divides the half-open interval [left, right) into equal-width
// buckets. Samples below left are counted in the underflow bin, samples at
// or above right in the overflow bin:
//
//	h, _ := histogram.New(0.0, 5.0, 5)
//	h.CountAll(sample.From([]float64{-0.5, 0.5, 1.5, 1.7, 3.1, 3.5, 3.6, 4.5, 5.5}))
//	fmt.Println(h) // 1 [1, 2, 0, 3, 1] 1
//
// # Classification
//
// Classify returns a BucketIndex tagged Underflow, Overflow or Bucket.
// Bucket positions are computed as floor((x-left)/width) and clamped to the
// last bucket, since rounding can place a sample just below right one past
// the end. NaN samples land in bucket 0.
//
// # Counts
//
// Bins hold uint32 counts that saturate at math.MaxUint32.
//
// # Borrowed Storage
//
// New allocates bucket storage. Wrap counts into a caller-provided []Bin in
// place, which is how package abi counts into foreign memory.
package histogram
