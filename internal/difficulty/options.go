package difficulty

import (
	"github.com/pencalc/pencalc/internal/digit"
	apperrors "github.com/pencalc/pencalc/internal/errors"
)

const (
	// DefaultRadix is the positional base assumed when the caller does not
	// choose one: ordinary decimal paper arithmetic.
	DefaultRadix = 10

	// DefaultCacheSize is the default width of the short-term memory window.
	// Three remembered sub-steps approximates how long a single-column fact
	// stays warm while working down a page.
	DefaultCacheSize = 3
)

// Options carries the tunable parameters shared by all estimators.
type Options struct {
	// Radix is the positional base of the simulated number system, >= 2.
	Radix int
	// CacheSize is the number of most-recent elementary steps remembered for
	// discounting. Zero disables discounting entirely.
	CacheSize int
}

// DefaultOptions returns the standard decimal configuration.
func DefaultOptions() Options {
	return Options{Radix: DefaultRadix, CacheSize: DefaultCacheSize}
}

// Validate rejects parameter combinations before any simulation begins.
func (o Options) Validate() error {
	if err := digit.ValidateRadix(o.Radix); err != nil {
		return err
	}
	if o.CacheSize < 0 {
		return apperrors.NewInvalidInputError("cache_size", "must be >= 0, got %d", o.CacheSize)
	}
	return nil
}
