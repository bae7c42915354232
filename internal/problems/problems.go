// Package problems builds practice problems on top of the difficulty
// estimators: random bounded chains of additions and subtractions, scored as
// the sum of their binary steps, with deduplication and difficulty-band
// selection for worksheet generation.
package problems

import (
	"strconv"
	"strings"

	"github.com/pencalc/pencalc/internal/difficulty"
	apperrors "github.com/pencalc/pencalc/internal/errors"
)

// Operator is one step of a problem chain.
type Operator byte

// The two chain operators.
const (
	Plus  Operator = '+'
	Minus Operator = '-'
)

// Problem is a left-to-right chain of additions and subtractions. The
// running value never drops below zero and never exceeds the factory limit,
// so every intermediate step is a valid pencil-and-paper operation.
type Problem struct {
	Numbers   []uint64
	Operators []Operator
}

// Statement renders the problem the way it appears on a worksheet, e.g.
// "47 + 38 = ?".
func (p Problem) Statement() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(p.Numbers[0], 10))
	for i, op := range p.Operators {
		b.WriteByte(' ')
		b.WriteByte(byte(op))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(p.Numbers[i+1], 10))
	}
	b.WriteString(" = ?")
	return b.String()
}

// Answer evaluates the chain left to right.
func (p Problem) Answer() uint64 {
	total := p.Numbers[0]
	for i, op := range p.Operators {
		if op == Plus {
			total += p.Numbers[i+1]
		} else {
			total -= p.Numbers[i+1]
		}
	}
	return total
}

// Signature is a compact identity for deduplication: the exact number and
// operator sequence, e.g. "47+38-5".
func (p Problem) Signature() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(p.Numbers[0], 10))
	for i, op := range p.Operators {
		b.WriteByte(byte(op))
		b.WriteString(strconv.FormatUint(p.Numbers[i+1], 10))
	}
	return b.String()
}

// Deduplicate removes repeated problems, keeping the first occurrence of
// each signature and preserving order.
func Deduplicate(in []Problem) []Problem {
	seen := make(map[string]struct{}, len(in))
	out := make([]Problem, 0, len(in))
	for _, p := range in {
		sig := p.Signature()
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Scored pairs a problem with its difficulty level.
type Scored struct {
	Problem Problem
	Level   float64
}

// Factory generates random problems with a fixed term count whose running
// value stays within [0, limit].
type Factory struct {
	terms        int
	limit        uint64
	minusPercent int
	opts         difficulty.Options
	rng          Rand
}

// Rand is the randomness the factory consumes. *math/rand.Rand satisfies
// it; tests can seed one for reproducible output.
type Rand interface {
	// Int63n returns a uniform value in [0, n).
	Int63n(n int64) int64
}

// NewFactory creates a problem factory. terms is the chain length in
// numbers (at least 2); limit bounds every intermediate value (at least 1).
func NewFactory(terms int, limit uint64, opts difficulty.Options, rng Rand) (*Factory, error) {
	if terms < 2 {
		return nil, apperrors.NewInvalidInputError("terms", "need at least 2, got %d", terms)
	}
	if limit < 1 {
		return nil, apperrors.NewInvalidInputError("limit", "must be positive")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, apperrors.NewInvalidInputError("rng", "must not be nil")
	}
	return &Factory{terms: terms, limit: limit, minusPercent: 50, opts: opts, rng: rng}, nil
}

// SetMinusPercent biases the chain operators: percent is the chance of
// drawing a subtraction step, 0-100. Values outside the range are rejected.
func (f *Factory) SetMinusPercent(percent int) error {
	if percent < 0 || percent > 100 {
		return apperrors.NewInvalidInputError("minusPercent", "must be between 0 and 100, got %d", percent)
	}
	f.minusPercent = percent
	return nil
}

// randRange returns a uniform value in [lo, hi]. Callers guarantee
// lo <= hi.
func (f *Factory) randRange(lo, hi uint64) uint64 {
	return lo + uint64(f.rng.Int63n(int64(hi-lo+1)))
}

// Create generates one random problem, or ok=false when the chain painted
// itself into a corner (running value 0 with no headroom to add).
func (f *Factory) Create() (Problem, bool) {
	current := f.randRange(1, f.limit)
	numbers := []uint64{current}
	operators := make([]Operator, 0, f.terms-1)

	for i := 0; i < f.terms-1; i++ {
		op := Plus
		if f.rng.Int63n(100) < int64(f.minusPercent) {
			op = Minus
		}

		if op == Plus {
			if available := f.limit - current; available > 0 {
				operand := f.randRange(1, available)
				current += operand
				operators = append(operators, Plus)
				numbers = append(numbers, operand)
				continue
			}
			op = Minus
		}

		if current == 0 {
			available := f.limit - current
			if available == 0 {
				return Problem{}, false
			}
			operand := f.randRange(1, available)
			current += operand
			operators = append(operators, Plus)
			numbers = append(numbers, operand)
			continue
		}

		operand := f.randRange(1, current)
		current -= operand
		operators = append(operators, Minus)
		numbers = append(numbers, operand)
	}

	return Problem{Numbers: numbers, Operators: operators}, true
}

// Difficulty scores a problem as the sum of the difficulties of its binary
// steps, walking the chain left to right with the running value as the
// first operand of every step.
func (f *Factory) Difficulty(p Problem) (float64, error) {
	total := 0.0
	running := p.Numbers[0]

	for i, op := range p.Operators {
		next := p.Numbers[i+1]
		if op == Plus {
			score, err := difficulty.SumOfTwo(running, next, f.opts)
			if err != nil {
				return 0, err
			}
			total += score
			running += next
		} else {
			score, err := difficulty.Difference(running, next, f.opts)
			if err != nil {
				return 0, err
			}
			total += float64(score)
			running -= next
		}
	}
	return total, nil
}
