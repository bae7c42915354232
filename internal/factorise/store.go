package factorise

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Snapshot is the persisted state of the prime cache: every prime found so
// far, together with the bound the sieve has been run to. Primes is sorted
// ascending and is only ever appended to.
type Snapshot struct {
	Bound  uint64   `json:"bound"`
	Primes []uint64 `json:"primes"`
}

// IsValid reports whether the snapshot is internally consistent: a positive
// bound, and a strictly increasing prime list starting at 2 that stays within
// the bound. An invalid snapshot is discarded and the sieve rebuilt from
// scratch.
func (s Snapshot) IsValid() bool {
	if s.Bound < 2 {
		return s.Bound == 0 && len(s.Primes) == 0
	}
	if len(s.Primes) == 0 || s.Primes[0] != 2 {
		return false
	}
	for i, p := range s.Primes {
		if p > s.Bound {
			return false
		}
		if i > 0 && p <= s.Primes[i-1] {
			return false
		}
	}
	return true
}

// Store abstracts persistence of the prime cache so the factoriser can be
// backed by a file, a test double, or nothing at all.
type Store interface {
	// Load returns the last persisted snapshot. A store with no prior
	// state returns the zero Snapshot and a nil error.
	Load() (Snapshot, error)

	// Save persists the snapshot, replacing any previous one.
	Save(Snapshot) error
}
