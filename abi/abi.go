package abi

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/binning/histogram"
	"github.com/hupe1980/binning/internal/conv"
	"github.com/hupe1980/binning/sample"
)

// Dataset is the foreign layout of a sample batch: a pointer to NumSamples
// contiguous float64 values.
type Dataset struct {
	Samples    *float64
	NumSamples int32
}

// Histogram is the foreign layout of a histogram. Buckets points to
// BucketCount contiguous bins.
type Histogram struct {
	Left        float64
	Right       float64
	Underflow   histogram.Bin
	Overflow    histogram.Bin
	BucketCount int32
	Buckets     *histogram.Bin
}

// NewDataset returns a Dataset that borrows samples. samples must stay
// alive and unmodified while the Dataset is in use.
func NewDataset(samples []float64) (Dataset, error) {
	n, err := conv.IntToInt32(len(samples))
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset length: %w", err)
	}
	if n == 0 {
		return Dataset{}, nil
	}
	return Dataset{Samples: &samples[0], NumSamples: n}, nil
}

// NewHistogram returns a Histogram that counts into buckets in place.
// Bounds are validated when an entry point first uses the histogram.
func NewHistogram(left, right float64, buckets []histogram.Bin) (Histogram, error) {
	n, err := conv.IntToInt32(len(buckets))
	if err != nil {
		return Histogram{}, fmt.Errorf("bucket count: %w", err)
	}
	h := Histogram{Left: left, Right: right, BucketCount: n}
	if n > 0 {
		h.Buckets = &buckets[0]
	}
	return h, nil
}

// Bins returns the bucket region as a slice aliasing the foreign memory.
func (h *Histogram) Bins() []histogram.Bin {
	return rawBins(h.Buckets, h.BucketCount)
}

func (d *Dataset) view() sample.View {
	if d.NumSamples == 0 {
		return sample.From(nil)
	}
	return sample.From(unsafe.Slice(d.Samples, int(d.NumSamples))) //nolint:gosec // length is a caller precondition
}

func (h *Histogram) engine() (*histogram.Histogram, error) {
	return histogram.Wrap(h.Left, h.Right, h.Underflow, h.Bins(), h.Overflow)
}

func (h *Histogram) store(e *histogram.Histogram) {
	h.Underflow = e.Underflow()
	h.Overflow = e.Overflow()
}

func rawBins(bins *histogram.Bin, count int32) []histogram.Bin {
	if count == 0 {
		return nil
	}
	return unsafe.Slice(bins, int(count)) //nolint:gosec // length is a caller precondition
}

// Bin counts every sample of dataset into hist.
//
// An error is returned only when hist describes a degenerate histogram
// (see histogram.ErrInvalidRange and histogram.ErrInvalidBucketCount); hist
// is left unchanged in that case.
func Bin(dataset *Dataset, hist *Histogram) error {
	h, err := hist.engine()
	if err != nil {
		return err
	}
	h.CountAll(dataset.view())
	hist.store(h)
	return nil
}

// CountSample counts a single sample into hist.
func CountSample(hist *Histogram, value float64) error {
	h, err := hist.engine()
	if err != nil {
		return err
	}
	h.Count(value)
	hist.store(h)
	return nil
}

// Increment increments a single bin.
func Increment(bin *histogram.Bin) {
	bin.Increment()
}

// IncrementAll increments each of the count bins starting at bins. It does
// not know about histogram bounds.
func IncrementAll(bins *histogram.Bin, count int32) {
	s := rawBins(bins, count)
	for i := range s {
		s[i].Increment()
	}
}

// SumSamples returns the left-to-right sum of the samples in dataset.
func SumSamples(dataset *Dataset) float64 {
	return dataset.view().Sum()
}
