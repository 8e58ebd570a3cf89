package histogram

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when the bounds do not describe a non-empty
	// finite interval with a positive bucket width.
	ErrInvalidRange = errors.New("invalid histogram range")

	// ErrInvalidBucketCount is returned when the bucket count is not positive.
	ErrInvalidBucketCount = errors.New("invalid bucket count")

	// ErrShapeMismatch is returned when merging histograms with different
	// bounds or bucket counts.
	ErrShapeMismatch = errors.New("histogram shape mismatch")
)

// ErrRange describes rejected bounds.
//
// It matches ErrInvalidRange via errors.Is.
type ErrRange struct {
	Left  float64
	Right float64
	Width float64
}

func (e *ErrRange) Error() string {
	return fmt.Sprintf("%s: left=%g right=%g width=%g", ErrInvalidRange, e.Left, e.Right, e.Width)
}

func (e *ErrRange) Unwrap() error { return ErrInvalidRange }

// ErrBucketCount describes a rejected bucket count.
//
// It matches ErrInvalidBucketCount via errors.Is.
type ErrBucketCount struct {
	Count int
}

func (e *ErrBucketCount) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidBucketCount, e.Count)
}

func (e *ErrBucketCount) Unwrap() error { return ErrInvalidBucketCount }

// ErrShape describes two histograms that cannot be merged.
type ErrShape struct {
	Expected Shape
	Actual   Shape
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrShapeMismatch, e.Expected, e.Actual)
}

func (e *ErrShape) Unwrap() error { return ErrShapeMismatch }

// Shape is the (left, right, bucket count) triple that parameterizes a histogram.
type Shape struct {
	Left    float64
	Right   float64
	Buckets int
}

func (s Shape) String() string {
	return fmt.Sprintf("[%g, %g)/%d", s.Left, s.Right, s.Buckets)
}
