// Package factorise provides integer factorisation backed by a growing,
// append-only prime cache. The cache is filled by a sieve of Eratosthenes,
// extended on demand, and can be persisted through a pluggable Store so the
// primes found in one run seed the next.
package factorise

import (
	"math"
	"sync"

	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/logging"
)

// minSieveBound is the smallest bound the sieve is ever run to, so tiny
// inputs do not trigger repeated extensions.
const minSieveBound = 64

// PrimePower is one entry of a factorisation: Prime raised to Exponent.
type PrimePower struct {
	Prime    uint64
	Exponent int
}

// Factoriser factorises positive integers using cached primes. All methods
// are safe for concurrent use; sieve extension and persistence happen under
// a single mutex, so the cache only ever grows.
type Factoriser struct {
	mu     sync.Mutex
	bound  uint64
	primes []uint64
	store  Store
	log    logging.Logger
}

// New creates a Factoriser seeded from the store's snapshot. A nil store
// keeps the cache in memory only. An unreadable or inconsistent snapshot is
// logged and discarded, and the sieve rebuilds from scratch.
func New(store Store, log logging.Logger) *Factoriser {
	if log == nil {
		log = logging.NewDefaultLogger()
	}
	f := &Factoriser{store: store, log: log}

	if store == nil {
		return f
	}
	snap, err := store.Load()
	if err != nil {
		log.Warn("prime cache load failed; rebuilding from scratch", logging.Err(err))
		return f
	}
	if !snap.IsValid() {
		log.Warn("prime cache snapshot inconsistent; rebuilding from scratch",
			logging.Uint64("bound", snap.Bound),
			logging.Int("primes", len(snap.Primes)))
		return f
	}
	f.bound = snap.Bound
	f.primes = snap.Primes
	return f
}

// Factorise returns the prime factorisation of x as prime powers in
// ascending prime order. Factorise(1) returns an empty factorisation.
// Values below 1 are rejected with an InvalidInputError.
func (f *Factoriser) Factorise(x uint64) ([]PrimePower, error) {
	if x == 0 {
		return nil, apperrors.NewInvalidInputError("x", "must be a positive integer")
	}
	if x == 1 {
		return []PrimePower{}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureBound(isqrt(x) + 1)

	factors := make([]PrimePower, 0, 4)
	remaining := x
	for _, p := range f.primes {
		if p*p > remaining {
			break
		}
		if remaining%p != 0 {
			continue
		}
		exponent := 0
		for remaining%p == 0 {
			remaining /= p
			exponent++
		}
		factors = append(factors, PrimePower{Prime: p, Exponent: exponent})
	}
	if remaining > 1 {
		// Whatever survives trial division by all primes up to sqrt(x)
		// is itself prime.
		factors = append(factors, PrimePower{Prime: remaining, Exponent: 1})
	}
	return factors, nil
}

// Primes returns a copy of all cached primes up to and including limit,
// extending the sieve first if needed.
func (f *Factoriser) Primes(limit uint64) []uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureBound(limit)

	out := make([]uint64, 0, len(f.primes))
	for _, p := range f.primes {
		if p > limit {
			break
		}
		out = append(out, p)
	}
	return out
}

// Bound returns how far the sieve has been run.
func (f *Factoriser) Bound() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bound
}

// ensureBound extends the sieve to cover at least limit and persists the
// grown cache. Callers must hold f.mu. Extension at least doubles the bound
// so a climbing sequence of requests stays near-linear overall.
func (f *Factoriser) ensureBound(limit uint64) {
	if limit <= f.bound {
		return
	}
	target := limit
	if doubled := f.bound * 2; doubled > target {
		target = doubled
	}
	if target < minSieveBound {
		target = minSieveBound
	}

	composite := make([]bool, target+1)
	for p := uint64(2); p*p <= target; p++ {
		if composite[p] {
			continue
		}
		for multiple := p * p; multiple <= target; multiple += p {
			composite[multiple] = true
		}
	}
	for n := f.bound + 1; n <= target; n++ {
		if n >= 2 && !composite[n] {
			f.primes = append(f.primes, n)
		}
	}
	f.bound = target
	f.persist()
}

// persist saves the current snapshot. A save failure is logged and the
// in-memory cache carries on untouched.
func (f *Factoriser) persist() {
	if f.store == nil {
		return
	}
	snap := Snapshot{Bound: f.bound, Primes: f.primes}
	if err := f.store.Save(snap); err != nil {
		f.log.Warn("prime cache save failed; continuing in memory", logging.Err(err))
	}
}

// isqrt returns the integer square root of n.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
