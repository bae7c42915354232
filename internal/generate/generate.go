// Package generate enumerates candidate operand pairs for the difficulty
// estimators: partitions of a sum, minuend/subtrahend pairs for a difference,
// multiple/divisor pairs, and factor pairs of a product. Generators are lazy,
// finite and restartable, so sweeps can walk them more than once without
// re-deriving anything.
package generate

// Pair is one candidate operand pair for a binary operation.
type Pair struct {
	A uint64
	B uint64
}

// PairGenerator walks a finite sequence of operand pairs.
type PairGenerator interface {
	// Next returns the next pair, or ok=false once the sequence is
	// exhausted.
	Next() (pair Pair, ok bool)

	// Reset rewinds the generator to the start of its sequence.
	Reset()
}

// SumPairs yields every ordered two-number partition (a, b) of target with
// a + b == target, starting from (0, target).
func SumPairs(target uint64) PairGenerator {
	return &sumPairs{target: target}
}

type sumPairs struct {
	target uint64
	next   uint64
	done   bool
}

func (g *sumPairs) Next() (Pair, bool) {
	if g.done {
		return Pair{}, false
	}
	pair := Pair{A: g.next, B: g.target - g.next}
	if g.next == g.target {
		g.done = true
	} else {
		g.next++
	}
	return pair, true
}

func (g *sumPairs) Reset() {
	g.next = 0
	g.done = false
}

// DifferencePairs yields every (minuend, subtrahend) pair with
// minuend - subtrahend == target and minuend <= limit, starting from
// (target, 0).
func DifferencePairs(target, limit uint64) PairGenerator {
	return &differencePairs{target: target, limit: limit, minuend: target}
}

type differencePairs struct {
	target  uint64
	limit   uint64
	minuend uint64
}

func (g *differencePairs) Next() (Pair, bool) {
	if g.minuend > g.limit {
		return Pair{}, false
	}
	pair := Pair{A: g.minuend, B: g.minuend - g.target}
	g.minuend++
	return pair, true
}

func (g *differencePairs) Reset() {
	g.minuend = g.target
}

// MultiplePairs yields every (multiple, divisor) pair where multiple is
// divisor * k for k = 1..count, for a fixed divisor. Divisor 0 yields
// nothing.
func MultiplePairs(divisor uint64, count uint64) PairGenerator {
	return &multiplePairs{divisor: divisor, count: count, k: 1}
}

type multiplePairs struct {
	divisor uint64
	count   uint64
	k       uint64
}

func (g *multiplePairs) Next() (Pair, bool) {
	if g.divisor == 0 || g.k > g.count {
		return Pair{}, false
	}
	pair := Pair{A: g.divisor * g.k, B: g.divisor}
	g.k++
	return pair, true
}

func (g *multiplePairs) Reset() {
	g.k = 1
}
