// Package render draws histograms as ASCII bar charts.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/binning/histogram"
)

// DefaultWidth is the length of the longest bar.
const DefaultWidth = 40

type options struct {
	width  int
	sparse bool
	mark   byte
}

// Option configures Render.
type Option func(*options)

// WithWidth sets the length of the longest bar. Values < 1 select DefaultWidth.
func WithWidth(width int) Option {
	return func(o *options) {
		if width < 1 {
			width = DefaultWidth
		}
		o.width = width
	}
}

// WithSparse omits empty buckets. Underflow and overflow are always drawn.
func WithSparse(sparse bool) Option {
	return func(o *options) {
		o.sparse = sparse
	}
}

// WithMark sets the byte bars are drawn with (default 'X').
func WithMark(mark byte) Option {
	return func(o *options) {
		o.mark = mark
	}
}

// Render writes one row per cell: underflow, each bucket, overflow. Bars are
// scaled so the fullest cell spans the configured width.
//
//	underflow  XXX         1
//	[0,1)      XXX         1
//	[1,2)      XXXXXX      2
func Render(w io.Writer, h *histogram.Histogram, optFns ...Option) error {
	o := options{width: DefaultWidth, mark: 'X'}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	maxCount := max(h.Underflow().Count(), h.Overflow().Count())
	for _, b := range h.Buckets() {
		maxCount = max(maxCount, b.Count())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(label string, b histogram.Bin) {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", label, o.bar(b.Count(), maxCount), b.Count())
	}

	row("underflow", h.Underflow())

	edges := h.Edges()
	if o.sparse {
		it := h.Occupied().Iterator()
		for it.HasNext() {
			i := int(it.Next())
			b, _ := h.BucketAt(i)
			row(interval(edges[i], edges[i+1]), b)
		}
	} else {
		for i, b := range h.Buckets() {
			row(interval(edges[i], edges[i+1]), b)
		}
	}

	row("overflow", h.Overflow())

	return tw.Flush()
}

func (o options) bar(count, maxCount uint32) string {
	if maxCount == 0 {
		return ""
	}
	n := uint64(count) * uint64(o.width) / uint64(maxCount)
	return strings.Repeat(string(o.mark), int(n)) //nolint:gosec // n <= width
}

func interval(lo, hi float64) string {
	return "[" + strconv.FormatFloat(lo, 'g', -1, 64) + "," + strconv.FormatFloat(hi, 'g', -1, 64) + ")"
}
