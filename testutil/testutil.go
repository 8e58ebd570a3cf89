package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Uniform returns n samples in range [0, 1).
func (r *RNG) Uniform(n int) []float64 {
	out := make([]float64, n)
	r.FillUniform(out)
	return out
}

// Gaussian returns n samples from N(mean, stddev²).
func (r *RNG) Gaussian(n int, mean, stddev float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = mean + r.rand.NormFloat64()*stddev
	}
	return out
}

// Sine returns n samples of 1.05*sin((u-0.5)*π)/2 for uniform u.
// The values cluster near ±0.525 and spill slightly past [-0.5, 0.5], so
// they exercise both tails and the out-of-range bins of a [-0.5, 0.5) or
// [-1, 1) histogram.
func (r *RNG) Sine(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		u := r.rand.Float64()
		out[i] = 1.05 * math.Sin((u-0.5)*math.Pi) / 2
	}
	return out
}

// Linear returns n samples start, start+step, start+2*step, ...
// Each value is produced by repeated addition, not multiplication.
func Linear(start, step float64, n int) []float64 {
	out := make([]float64, n)
	x := start
	for i := range out {
		out[i] = x
		x += step
	}
	return out
}
