// Command binning counts samples into a fixed-width histogram and draws it.
//
// Samples are read as whitespace-separated numbers from the named files, or
// from stdin when no file is given:
//
//	seq 0 0.5 10 | binning -left 0 -right 10 -buckets 10
//	binning -config binning.yaml samples.txt
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/hupe1980/binning"
	"github.com/hupe1980/binning/config"
	"github.com/hupe1980/binning/render"
	"github.com/hupe1980/binning/sample"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "binning:", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("binning", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		left       = fs.Float64("left", 0, "inclusive lower bound")
		right      = fs.Float64("right", 1, "exclusive upper bound")
		buckets    = fs.Int("buckets", 10, "number of buckets")
		workers    = fs.Int("workers", 1, "goroutines per batch")
		width      = fs.Int("width", render.DefaultWidth, "length of the longest bar")
		sparse     = fs.Bool("sparse", false, "omit empty buckets")
		logLevel   = fs.String("log-level", "info", "log level (debug, info, warn, error)")
		logFormat  = fs.String("log-format", "text", "log format (text, json)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	// Flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "left":
			cfg.Left = *left
		case "right":
			cfg.Right = *right
		case "buckets":
			cfg.Buckets = *buckets
		case "workers":
			cfg.Workers = *workers
		case "width":
			cfg.Render.Width = *width
		case "sparse":
			cfg.Render.Sparse = *sparse
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	b, err := binning.New(cfg.Left, cfg.Right, cfg.Buckets,
		binning.WithWorkers(cfg.Workers),
		binning.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	samples, err := readSamples(fs.Args(), stdin)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "samples loaded", "count", len(samples))

	if err := b.Bin(ctx, sample.From(samples)); err != nil {
		return fmt.Errorf("bin: %w", err)
	}
	logger.LogSummary(ctx, b.Histogram())

	return render.Render(stdout, b.Histogram(),
		render.WithWidth(cfg.Render.Width),
		render.WithSparse(cfg.Render.Sparse),
	)
}

func newLogger(c config.Log, w io.Writer) (*binning.Logger, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}

	if c.Format == "json" {
		return binning.NewJSONLogger(w, level), nil
	}
	return binning.NewTextLogger(w, level), nil
}

func readSamples(paths []string, stdin io.Reader) ([]float64, error) {
	if len(paths) == 0 {
		return scanSamples(stdin, "stdin", nil)
	}

	var samples []float64
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		samples, err = scanSamples(f, path, samples)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return samples, nil
}

func scanSamples(r io.Reader, name string, dst []float64) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for n := 1; sc.Scan(); n++ {
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: sample %d: %w", name, n, err)
		}
		dst = append(dst, x)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return dst, nil
}
