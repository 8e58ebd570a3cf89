package binning

import (
	"github.com/hupe1980/binning/histogram"
)

var (
	// ErrInvalidRange is returned when left >= right, a bound is not finite,
	// or the bucket width is not a positive finite number.
	ErrInvalidRange = histogram.ErrInvalidRange

	// ErrInvalidBucketCount is returned when the bucket count is not positive.
	ErrInvalidBucketCount = histogram.ErrInvalidBucketCount
)
