package generate

import (
	"sort"

	"github.com/pencalc/pencalc/internal/factorise"
)

// ProductsGenerator yields every factor pair of a target product. Pairs are
// produced in ascending order of the smaller factor: first (a, b) with
// a <= b, then, when a != b, the mirrored (b, a). The two orientations are
// distinct multiplication problems with different digit grids, so both are
// surfaced; a square factor a == b appears exactly once.
type ProductsGenerator struct {
	factoriser *factorise.Factoriser
	target     uint64
	pairs      []Pair
	index      int
	built      bool
	err        error
}

// NewProductsGenerator creates a generator for the factor pairs of target.
// Divisor enumeration is deferred until the first Next call.
func NewProductsGenerator(f *factorise.Factoriser, target uint64) *ProductsGenerator {
	return &ProductsGenerator{factoriser: f, target: target}
}

// Next returns the next factor pair, or ok=false once the sequence is
// exhausted. If the target could not be factorised, Next reports exhaustion
// and Err returns the cause.
func (g *ProductsGenerator) Next() (Pair, bool) {
	if !g.built {
		g.build()
	}
	if g.err != nil || g.index >= len(g.pairs) {
		return Pair{}, false
	}
	pair := g.pairs[g.index]
	g.index++
	return pair, true
}

// Reset rewinds the generator to the first factor pair.
func (g *ProductsGenerator) Reset() {
	g.index = 0
}

// Err returns the factorisation error encountered during enumeration, if
// any.
func (g *ProductsGenerator) Err() error {
	if !g.built {
		g.build()
	}
	return g.err
}

func (g *ProductsGenerator) build() {
	g.built = true

	factors, err := g.factoriser.Factorise(g.target)
	if err != nil {
		g.err = err
		return
	}

	// Expand the exponent vector into the full divisor list.
	divisors := []uint64{1}
	for _, pp := range factors {
		power := uint64(1)
		grown := divisors
		for e := 0; e < pp.Exponent; e++ {
			power *= pp.Prime
			for _, d := range divisors {
				grown = append(grown, d*power)
			}
		}
		divisors = grown
	}
	sort.Slice(divisors, func(i, j int) bool { return divisors[i] < divisors[j] })

	for _, a := range divisors {
		b := g.target / a
		if a > b {
			break
		}
		g.pairs = append(g.pairs, Pair{A: a, B: b})
		if a != b {
			g.pairs = append(g.pairs, Pair{A: b, B: a})
		}
	}
}
