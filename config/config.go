// Package config loads binning command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config describes a binning run.
type Config struct {
	Left    float64 `yaml:"left"`
	Right   float64 `yaml:"right"`
	Buckets int     `yaml:"buckets"`
	Workers int     `yaml:"workers"`
	Log     Log     `yaml:"log"`
	Render  Render  `yaml:"render"`
}

// Log configures the command's logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Render configures the bar chart.
type Render struct {
	Width  int  `yaml:"width"`
	Sparse bool `yaml:"sparse"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Left:    0,
		Right:   1,
		Buckets: 10,
		Workers: 1,
		Log:     Log{Level: "info", Format: "text"},
		Render:  Render{Width: 40},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Workers < 1 {
		c.Workers = 1
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var err error

	if math.IsNaN(c.Left) || math.IsInf(c.Left, 0) || math.IsNaN(c.Right) || math.IsInf(c.Right, 0) {
		err = multierr.Append(err, fmt.Errorf("bounds must be finite: left=%g right=%g", c.Left, c.Right))
	} else if c.Left >= c.Right {
		err = multierr.Append(err, fmt.Errorf("left must be less than right: left=%g right=%g", c.Left, c.Right))
	}
	if c.Buckets < 1 {
		err = multierr.Append(err, fmt.Errorf("buckets must be positive: %d", c.Buckets))
	}
	if _, lerr := c.Log.SlogLevel(); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Render.Width < 1 {
		err = multierr.Append(err, fmt.Errorf("render width must be positive: %d", c.Render.Width))
	}

	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
