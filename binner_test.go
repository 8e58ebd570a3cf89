package binning

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/binning/histogram"
	"github.com/hupe1980/binning/sample"
	"github.com/hupe1980/binning/testutil"
)

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b, err := New(0, 5, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, b.Histogram().Len())
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := New(5, 5, 5)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("invalid bucket count", func(t *testing.T) {
		_, err := New(0, 5, 0)
		assert.ErrorIs(t, err, ErrInvalidBucketCount)
	})
}

func TestBinSequential(t *testing.T) {
	b, err := New(0, 5, 5)
	require.NoError(t, err)

	err = b.Bin(context.Background(), sample.From([]float64{-0.5, 0.5, 1.5, 1.7, 3.1, 3.5, 3.6, 4.5, 5.5}))
	require.NoError(t, err)

	assert.Equal(t, "1 [1, 2, 0, 3, 1] 1", b.Histogram().String())
}

func TestBinParallelMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(4711)
	data := sample.From(rng.Sine(100000))

	want, err := histogram.New(-0.5, 0.5, 97)
	require.NoError(t, err)
	want.CountAll(data)

	for _, workers := range []int{1, 2, 4, 7, 16} {
		b, err := New(-0.5, 0.5, 97, WithWorkers(workers))
		require.NoError(t, err)

		require.NoError(t, b.Bin(context.Background(), data))

		got := b.Histogram()
		assert.Equal(t, want.Underflow(), got.Underflow(), "workers=%d", workers)
		assert.Equal(t, want.Overflow(), got.Overflow(), "workers=%d", workers)
		assert.Equal(t, want.Buckets(), got.Buckets(), "workers=%d", workers)
	}
}

func TestBinAccumulates(t *testing.T) {
	b, err := New(0, 1, 4, WithWorkers(3))
	require.NoError(t, err)

	data := sample.From(testutil.NewRNG(1).Uniform(1000))
	require.NoError(t, b.Bin(context.Background(), data))
	require.NoError(t, b.Bin(context.Background(), data))
	b.Count(2)

	assert.Equal(t, uint64(2001), b.Histogram().Total())
}

func TestBinCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		b, err := New(0, 1, 10, WithWorkers(workers))
		require.NoError(t, err)

		err = b.Bin(ctx, sample.From(testutil.NewRNG(1).Uniform(50000)))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, uint64(0), b.Histogram().Total(), "workers=%d", workers)
	}
}

func TestBinWorkersBeyondSamples(t *testing.T) {
	for _, workers := range []int{1 << 30, math.MaxInt} {
		b, err := New(0, 1, 4, WithWorkers(workers))
		require.NoError(t, err)

		require.NoError(t, b.Bin(context.Background(), sample.From([]float64{0.1, 0.2, 0.3})))
		assert.Equal(t, "0 [3, 0, 0, 0] 0", b.Histogram().String(), "workers=%d", workers)
	}
}

// expiringContext reports Canceled once Err has been called more than live times.
type expiringContext struct {
	context.Context
	live int
}

func (c *expiringContext) Err() error {
	if c.live <= 0 {
		return context.Canceled
	}
	c.live--
	return nil
}

func TestBinSequentialCancelledMidBatch(t *testing.T) {
	b, err := New(0, 1, 10)
	require.NoError(t, err)

	// One check before fan-out, one for the first chunk, cancelled at the second.
	ctx := &expiringContext{Context: context.Background(), live: 2}
	err = b.Bin(ctx, sample.From(testutil.NewRNG(1).Uniform(3*chunkSize)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, ctx.live)
	assert.Equal(t, uint64(0), b.Histogram().Total())

	small := sample.From(testutil.NewRNG(1).Uniform(chunkSize))
	require.NoError(t, b.Bin(context.Background(), small))
	assert.Equal(t, uint64(chunkSize), b.Histogram().Total())
}

func TestMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	b, err := New(0, 1, 10, WithMetricsCollector(metrics), WithWorkers(2))
	require.NoError(t, err)

	require.NoError(t, b.Bin(context.Background(), sample.From([]float64{0.1, 0.2, 0.3})))
	b.Count(0.5)
	b.Count(0.6)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, b.Bin(ctx, sample.From([]float64{0.1})))

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.BinCount)
	assert.Equal(t, int64(1), stats.BinErrors)
	assert.Equal(t, int64(3), stats.BinSamples)
	assert.Equal(t, int64(2), stats.SampleCount)
	assert.GreaterOrEqual(t, stats.BinAvgNanos, int64(0))
}

func TestNilOptions(t *testing.T) {
	b, err := New(0, 1, 10, nil, WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)

	require.NoError(t, b.Bin(context.Background(), sample.From([]float64{0.5})))
	b.Count(0.5)
	assert.Equal(t, uint64(2), b.Histogram().Total())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b, err := New(0, 5, 5, WithLogger(logger), WithWorkers(2))
	require.NoError(t, err)

	require.NoError(t, b.Bin(context.Background(), sample.From([]float64{1, 2, 3})))
	logger.LogSummary(context.Background(), b.Histogram())

	out := buf.String()
	assert.Contains(t, out, `"msg":"bin completed"`)
	assert.Contains(t, out, `"samples":3`)
	assert.Contains(t, out, `"parts":2`)
	assert.Contains(t, out, `"buckets":5`)
	assert.Contains(t, out, `"workers":2`)
	assert.Contains(t, out, `"msg":"histogram summary"`)
	assert.Contains(t, out, `"occupied":3`)
}

func TestFormatLoggers(t *testing.T) {
	var jsonBuf, textBuf bytes.Buffer

	jsonLogger := NewJSONLogger(&jsonBuf, slog.LevelInfo)
	textLogger := NewTextLogger(&textBuf, slog.LevelWarn)

	h, err := histogram.New(0, 2, 2)
	require.NoError(t, err)
	h.Count(0.5)

	for _, l := range []*Logger{jsonLogger, textLogger} {
		l.WithShape(h.Shape()).LogSummary(context.Background(), h)
		l.LogBin(context.Background(), 7, 1, context.Canceled)
	}

	assert.Contains(t, jsonBuf.String(), `"msg":"histogram summary"`)
	assert.Contains(t, jsonBuf.String(), `"total":1`)
	assert.Contains(t, jsonBuf.String(), `"msg":"bin failed"`)

	// Warn level drops the info summary but keeps the error.
	assert.NotContains(t, textBuf.String(), "histogram summary")
	assert.Contains(t, textBuf.String(), `msg="bin failed"`)
	assert.Contains(t, textBuf.String(), "samples=7")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func BenchmarkBin(b *testing.B) {
	rng := testutil.NewRNG(4711)
	data := sample.From(rng.Sine(1 << 20))

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			bn, err := New(-1, 1, 1000, WithWorkers(workers))
			require.NoError(b, err)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = bn.Bin(context.Background(), data)
			}
		})
	}
}
