package histogram

import (
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/binning/sample"
)

// Histogram counts samples into equal-width buckets over [left, right),
// plus one underflow and one overflow bin.
//
// A Histogram is not safe for concurrent use.
type Histogram struct {
	left      float64
	right     float64
	width     float64
	underflow Bin
	overflow  Bin
	buckets   []Bin
}

// New returns an empty histogram with bucketCount buckets spanning [left, right).
func New(left, right float64, bucketCount int) (*Histogram, error) {
	if bucketCount <= 0 {
		return nil, &ErrBucketCount{Count: bucketCount}
	}
	width, err := bucketWidth(left, right, bucketCount)
	if err != nil {
		return nil, err
	}

	return &Histogram{
		left:    left,
		right:   right,
		width:   width,
		buckets: make([]Bin, bucketCount),
	}, nil
}

// Wrap returns a histogram that counts into buckets in place.
//
// The histogram borrows buckets: the caller keeps it alive and does not
// touch it while the histogram is in use. The bucket count is len(buckets).
func Wrap(left, right float64, underflow Bin, buckets []Bin, overflow Bin) (*Histogram, error) {
	if len(buckets) == 0 {
		return nil, &ErrBucketCount{Count: len(buckets)}
	}
	width, err := bucketWidth(left, right, len(buckets))
	if err != nil {
		return nil, err
	}

	return &Histogram{
		left:      left,
		right:     right,
		width:     width,
		underflow: underflow,
		overflow:  overflow,
		buckets:   buckets,
	}, nil
}

func bucketWidth(left, right float64, n int) (float64, error) {
	// !(left < right) also rejects NaN bounds.
	if !(left < right) || math.IsInf(left, 0) || math.IsInf(right, 0) {
		return 0, &ErrRange{Left: left, Right: right, Width: math.NaN()}
	}

	width := (right - left) / float64(n)
	if math.IsInf(width, 0) {
		// right - left overflows for bounds near opposite ends of the float range.
		width = right/float64(n) - left/float64(n)
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return 0, &ErrRange{Left: left, Right: right, Width: width}
	}

	return width, nil
}

// Classify returns the cell a datum belongs to.
func (h *Histogram) Classify(datum float64) BucketIndex {
	if datum < h.left {
		return UnderflowIndex()
	}
	if datum >= h.right {
		return OverflowIndex()
	}

	offset := (datum - h.left) / h.width
	if math.IsInf(offset, 0) {
		offset = datum/h.width - h.left/h.width
	}
	pos := math.Floor(offset)
	switch {
	case !(pos >= 0):
		// NaN compares false against both bounds and lands here.
		return BucketAtIndex(0)
	case pos >= float64(len(h.buckets)):
		// Rounding can push a datum just below right onto len(buckets).
		return BucketAtIndex(len(h.buckets) - 1)
	default:
		return BucketAtIndex(int(pos))
	}
}

// Count records one datum.
func (h *Histogram) Count(datum float64) {
	idx := h.Classify(datum)
	switch idx.Kind() {
	case Underflow:
		h.underflow.Increment()
	case Overflow:
		h.overflow.Increment()
	case Bucket:
		h.buckets[idx.pos].Increment()
	}
}

// CountAll records every sample of the view in order.
func (h *Histogram) CountAll(samples sample.View) {
	for _, x := range samples.Slice() {
		h.Count(x)
	}
}

// BucketAt returns the bucket at position i. ok is false when i is out of range.
func (h *Histogram) BucketAt(i int) (b Bin, ok bool) {
	if i < 0 || i >= len(h.buckets) {
		return Bin{}, false
	}
	return h.buckets[i], true
}

// Buckets returns a copy of the bucket sequence.
func (h *Histogram) Buckets() []Bin {
	out := make([]Bin, len(h.buckets))
	copy(out, h.buckets)
	return out
}

// Underflow returns the bin counting samples below Left.
func (h *Histogram) Underflow() Bin { return h.underflow }

// Overflow returns the bin counting samples at or above Right.
func (h *Histogram) Overflow() Bin { return h.overflow }

// Left returns the inclusive lower bound.
func (h *Histogram) Left() float64 { return h.left }

// Right returns the exclusive upper bound.
func (h *Histogram) Right() float64 { return h.right }

// Width returns the width of each bucket.
func (h *Histogram) Width() float64 { return h.width }

// Len returns the number of buckets.
func (h *Histogram) Len() int { return len(h.buckets) }

// Shape returns the parameters of the histogram.
func (h *Histogram) Shape() Shape {
	return Shape{Left: h.left, Right: h.right, Buckets: len(h.buckets)}
}

// Total returns the number of samples recorded across all cells.
func (h *Histogram) Total() uint64 {
	total := uint64(h.underflow.count) + uint64(h.overflow.count)
	for _, b := range h.buckets {
		total += uint64(b.count)
	}
	return total
}

// Edges returns the Len()+1 bucket boundaries from Left to Right.
func (h *Histogram) Edges() []float64 {
	edges := make([]float64, len(h.buckets)+1)
	if !math.IsInf(h.right-h.left, 0) {
		return floats.Span(edges, h.left, h.right)
	}

	// left + i*width, halved so the partial sums stay finite.
	for i := range h.buckets {
		edges[i] = 2 * (h.left/2 + h.width/2*float64(i))
	}
	edges[len(h.buckets)] = h.right
	return edges
}

// CloneEmpty returns a new histogram with the same shape and no counts.
// The clone owns its buckets.
func (h *Histogram) CloneEmpty() *Histogram {
	return &Histogram{
		left:    h.left,
		right:   h.right,
		width:   h.width,
		buckets: make([]Bin, len(h.buckets)),
	}
}

// Merge adds the counts of other into h. Both histograms must have the same shape.
func (h *Histogram) Merge(other *Histogram) error {
	if h.Shape() != other.Shape() {
		return &ErrShape{Expected: h.Shape(), Actual: other.Shape()}
	}

	h.underflow.Add(other.underflow)
	h.overflow.Add(other.overflow)
	for i := range h.buckets {
		h.buckets[i].Add(other.buckets[i])
	}

	return nil
}

// Occupied returns the positions of all non-empty buckets.
func (h *Histogram) Occupied() *roaring.Bitmap {
	bm := roaring.New()
	for i, b := range h.buckets {
		if b.count > 0 {
			bm.Add(uint32(i)) //nolint:gosec // bucket positions fit in uint32
		}
	}
	return bm
}

// String formats the histogram as "underflow [b0, b1, ...] overflow".
func (h *Histogram) String() string {
	var sb strings.Builder
	sb.WriteString(h.underflow.String())
	sb.WriteString(" [")
	for i, b := range h.buckets {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("] ")
	sb.WriteString(h.overflow.String())
	return sb.String()
}
