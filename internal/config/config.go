// Package config defines the application configuration and its resolution
// chain: command-line flags first, then PENCALC_* environment variables,
// then defaults.
package config

import (
	"flag"
	"io"
	"time"

	"github.com/pencalc/pencalc/internal/difficulty"
	apperrors "github.com/pencalc/pencalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application
// reads.
const EnvPrefix = "PENCALC_"

// Defaults for flag and environment resolution.
const (
	DefaultTimeout      = 5 * time.Minute
	DefaultAddr         = ":8080"
	DefaultTerms        = 2
	DefaultLimit        = 100
	DefaultAmount       = 100
	DefaultMinusPercent = 50
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Expression is the positional problem to score, e.g. "47+38" or
	// "840/35". Empty selects the interactive REPL.
	Expression string

	// Radix is the positional base the estimators work in.
	Radix int
	// CacheSize is the recency window length; 0 disables the discount.
	CacheSize int
	// PrimeCachePath is the prime-cache file; empty selects the default
	// location in the user's home directory.
	PrimeCachePath string

	// Compare scores every applicable operation instead of just the one
	// in the expression.
	Compare bool

	// Sweep mode: estimate the difficulty distribution by sampling.
	Sweep      bool
	SampleSize int
	Precision  int

	// Worksheet mode: generate a printable problem set.
	Worksheet    bool
	OutputFile   string
	Amount       int
	Terms        int
	Limit        uint64
	MinLevel     float64
	MaxLevel     float64
	MinusPercent int

	// Serve mode: run the HTTP scoring endpoint.
	Serve bool
	Addr  string

	// TUI mode: interactive terminal explorer.
	TUI bool

	// Seed fixes the random source for sweeps and worksheets; 0 derives
	// one from the clock.
	Seed int64

	Timeout time.Duration
	Verbose bool
	Quiet   bool
}

// Options returns the estimator options this configuration selects.
func (c AppConfig) Options() difficulty.Options {
	return difficulty.Options{Radix: c.Radix, CacheSize: c.CacheSize}
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for any flag not explicitly set. Usage errors are
// written to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Radix:        difficulty.DefaultRadix,
		CacheSize:    difficulty.DefaultCacheSize,
		SampleSize:   100_000,
		Precision:    2,
		Amount:       DefaultAmount,
		Terms:        DefaultTerms,
		Limit:        DefaultLimit,
		MinLevel:     1,
		MaxLevel:     0, // 0 means unbounded
		MinusPercent: DefaultMinusPercent,
		Addr:         DefaultAddr,
		Timeout:      DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Radix, "radix", cfg.Radix, "positional base for the estimators (at least 2)")
	fs.IntVar(&cfg.CacheSize, "cache", cfg.CacheSize, "recency window size; 0 disables the repeat discount")
	fs.StringVar(&cfg.PrimeCachePath, "prime-cache", cfg.PrimeCachePath, "prime cache file (default ~/.pencalc_primes.json)")
	fs.BoolVar(&cfg.Compare, "compare", false, "score every applicable operation for the operand pair")

	fs.BoolVar(&cfg.Sweep, "sweep", false, "sample random problems and print the difficulty distribution")
	fs.IntVar(&cfg.SampleSize, "samples", cfg.SampleSize, "sweep sample size")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimal places for sweep difficulty buckets")

	fs.BoolVar(&cfg.Worksheet, "worksheet", false, "generate a printable worksheet")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "worksheet output file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "worksheet output file (shorthand)")
	fs.IntVar(&cfg.Amount, "amount", cfg.Amount, "number of worksheet problems")
	fs.IntVar(&cfg.Terms, "terms", cfg.Terms, "numbers per problem chain")
	fs.Uint64Var(&cfg.Limit, "limit", cfg.Limit, "upper bound for every intermediate value")
	fs.Float64Var(&cfg.MinLevel, "min-level", cfg.MinLevel, "minimum problem difficulty")
	fs.Float64Var(&cfg.MaxLevel, "max-level", cfg.MaxLevel, "maximum problem difficulty (0 = unbounded)")
	fs.IntVar(&cfg.MinusPercent, "minus-percent", cfg.MinusPercent, "share of subtraction problems, 0-100")

	fs.BoolVar(&cfg.Serve, "serve", false, "run the HTTP scoring server")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address for the HTTP server")

	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive terminal explorer")

	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for sweeps and worksheets (0 = from clock)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall execution timeout")

	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress non-essential output")
	fs.BoolVar(&cfg.Quiet, "q", false, "suppress non-essential output (shorthand)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	cfg.Expression = fs.Arg(0)

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations no mode can run with.
func validate(cfg AppConfig) error {
	if err := cfg.Options().Validate(); err != nil {
		return err
	}
	if cfg.SampleSize < 1 {
		return apperrors.NewConfigError("samples must be positive, got %d", cfg.SampleSize)
	}
	if cfg.Precision < 0 || cfg.Precision > 8 {
		return apperrors.NewConfigError("precision must be between 0 and 8, got %d", cfg.Precision)
	}
	if cfg.Amount < 1 {
		return apperrors.NewConfigError("amount must be positive, got %d", cfg.Amount)
	}
	if cfg.Terms < 2 {
		return apperrors.NewConfigError("terms must be at least 2, got %d", cfg.Terms)
	}
	if cfg.Limit < 1 {
		return apperrors.NewConfigError("limit must be positive, got %d", cfg.Limit)
	}
	if cfg.MinusPercent < 0 || cfg.MinusPercent > 100 {
		return apperrors.NewConfigError("minus-percent must be between 0 and 100, got %d", cfg.MinusPercent)
	}
	if cfg.MaxLevel != 0 && cfg.MaxLevel < cfg.MinLevel {
		return apperrors.NewConfigError("max-level %g is below min-level %g", cfg.MaxLevel, cfg.MinLevel)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}
