// Package abi is the boundary between foreign callers and the binning engine.
//
// It is the only package that turns raw memory into slices. Dataset and
// Histogram mirror C struct layouts; field order and widths are part of the
// contract:
//
//	struct Dataset   { double *samples; int32_t num_samples; };
//	struct Bin       { uint32_t count; };
//	struct Histogram {
//	    double left;
//	    double right;
//	    struct Bin underflow;
//	    struct Bin overflow;
//	    int32_t bucket_count;
//	    struct Bin *buckets;
//	};
//
// # Preconditions
//
// The entry points do not validate memory. Before calling in, the caller
// guarantees that:
//
//   - Samples points to at least NumSamples valid float64 values.
//   - Buckets points to exactly BucketCount valid bins.
//   - Lengths are not negative. A zero length may come with a nil pointer.
//   - The memory stays valid, and is accessed by nobody else, until the
//     call returns.
//
// Violating these is undefined behavior, not an error. Only conditions the
// engine can detect on its own, such as left >= right or a zero bucket
// count, are reported as errors.
package abi
