// Package testutil provides testing utilities for binning.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for sample sequences.
//
// # Random Samples
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Uniform(1000)           // uniform [0, 1)
//	ys := rng.Gaussian(1000, 0, 1)    // standard normal
//	zs := rng.Sine(1000)              // heavy tails near ±0.5
//
// # Deterministic Samples
//
//	xs := testutil.Linear(-0.5, 0.5, 22) // -0.5, 0.0, ..., 10.0
package testutil
