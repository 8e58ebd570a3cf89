package binning

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/binning/histogram"
	"github.com/hupe1980/binning/sample"
)

// chunkSize is how many samples a worker counts between context checks.
const chunkSize = 4096

// Binner counts batches of samples into a histogram.
//
// A Binner is not safe for concurrent use. With WithWorkers, a single Bin
// call fans out internally, but callers must still serialize calls.
type Binner struct {
	hist   *histogram.Histogram
	opts   options
	logger *Logger
}

// New creates a Binner over a fresh histogram with buckets equal-width
// buckets spanning [left, right).
func New(left, right float64, buckets int, optFns ...Option) (*Binner, error) {
	h, err := histogram.New(left, right, buckets)
	if err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)

	return &Binner{
		hist:   h,
		opts:   opts,
		logger: opts.logger.WithShape(h.Shape()).WithWorkers(opts.workers),
	}, nil
}

// Histogram returns the underlying histogram.
func (b *Binner) Histogram() *histogram.Histogram {
	return b.hist
}

// Count records a single sample.
func (b *Binner) Count(x float64) {
	b.hist.Count(x)
	b.opts.metricsCollector.RecordSample()
}

// Bin records every sample of the view.
//
// If ctx is done before all samples are counted, Bin returns ctx.Err() and
// the histogram is left as it was.
func (b *Binner) Bin(ctx context.Context, samples sample.View) error {
	start := time.Now()

	parts := samples.Split(b.opts.workers)
	err := ctx.Err()
	if err == nil {
		if len(parts) == 1 {
			err = b.binSequential(ctx, samples)
		} else {
			err = b.binParallel(ctx, parts)
		}
	}

	b.opts.metricsCollector.RecordBin(samples.Len(), time.Since(start), err)
	b.logger.LogBin(ctx, samples.Len(), len(parts), err)

	return err
}

func (b *Binner) binSequential(ctx context.Context, samples sample.View) error {
	if samples.Len() <= chunkSize {
		b.hist.CountAll(samples)
		return nil
	}

	h := b.hist.CloneEmpty()
	if err := countChunked(ctx, h, samples); err != nil {
		return err
	}
	return b.hist.Merge(h)
}

func (b *Binner) binParallel(ctx context.Context, parts []sample.View) error {
	partials := make([]*histogram.Histogram, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			h := b.hist.CloneEmpty()
			if err := countChunked(gctx, h, part); err != nil {
				return err
			}
			partials[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range partials {
		if err := b.hist.Merge(p); err != nil {
			return err
		}
	}

	return nil
}

// countChunked counts samples into h, checking ctx before every chunk.
func countChunked(ctx context.Context, h *histogram.Histogram, samples sample.View) error {
	xs := samples.Slice()
	for lo := 0; lo < len(xs); lo += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.CountAll(sample.From(xs[lo:min(lo+chunkSize, len(xs))]))
	}
	return nil
}
