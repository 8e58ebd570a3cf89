// Package binning provides fixed-width histogram binning for Go.
//
// Samples are classified into equal-width buckets over a half-open interval
// [left, right). Samples below left are counted as underflow, samples at or
// above right as overflow.
//
// # Quick Start
//
//	b, _ := binning.New(0.0, 5.0, 5)
//	_ = b.Bin(ctx, sample.From([]float64{-0.5, 0.5, 1.5, 1.7, 3.1, 3.5, 3.6, 4.5, 5.5}))
//	fmt.Println(b.Histogram()) // 1 [1, 2, 0, 3, 1] 1
//
// # Parallel Batches
//
// Large batches can be split across goroutines. Every worker counts into its
// own histogram and the results are merged, so no histogram is ever shared
// between goroutines:
//
//	b, _ := binning.New(-1, 1, 1000, binning.WithWorkers(runtime.GOMAXPROCS(0)))
//
// # Packages
//
//   - histogram: Bin, BucketIndex and the Histogram engine
//   - sample: read-only sample views
//   - abi: C-compatible layouts and entry points for foreign callers
//   - render: ASCII bar charts
//   - config: YAML configuration for the binning command
package binning
