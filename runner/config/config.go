package config

import (
	"strings"

	"github.com/bench-compare/runner/types"
)

// Config is the optional run configuration. Every field can also be set from
// the command line; explicit flags take precedence over file values.
type Config struct {
	// Threshold is the fractional change beyond which a benchmark is
	// classified as a regression or improvement (0.05 = 5%).
	Threshold float64 `yaml:"threshold"`

	// FailOnRegression enables the strict verdict mode.
	FailOnRegression bool `yaml:"fail_on_regression"`

	// MetricPriority overrides the ordered list of candidate timing fields.
	MetricPriority []string `yaml:"metric_priority"`

	// NoColor disables ANSI colors in the text report.
	NoColor bool `yaml:"no_color"`

	Outputs OutputsConfig `yaml:"outputs"`
}

// OutputsConfig names the optional output destinations. Empty paths disable
// the corresponding output.
type OutputsConfig struct {
	JSON     string `yaml:"json"`
	HTML     string `yaml:"html"`
	CSV      string `yaml:"csv"`
	Markdown string `yaml:"markdown"`
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in run configuration.
func Default() *Config {
	return &Config{
		Threshold: 0.05,
	}
}

// Validate checks the run parameters. It runs before any benchmark data is
// read.
func (c *Config) Validate() error {
	if c.Threshold <= 0 {
		return &types.ValidationError{Msg: "threshold must be positive"}
	}
	for _, field := range c.MetricPriority {
		if strings.TrimSpace(field) == "" {
			return &types.ValidationError{Msg: "metric_priority must not contain empty field names"}
		}
	}
	return nil
}
