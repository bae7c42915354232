package difficulty

import (
	"github.com/pencalc/pencalc/internal/digit"
	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/recency"
)

// ProductOfTwo estimates the difficulty of multiplying x by y with the grid
// method: every digit of x against every digit of y, then the partial-product
// rows summed with positional shifts. The row summation is itself priced
// through the column-addition walker, so combining partial products is not free.
//
// The grid orientation matters: ProductOfTwo(x, y) lays out len(y) rows of
// len(x) cells, so swapping the operands is a structurally different problem
// and may score differently.
//
// Returns:
//   - float64: The difficulty score, >= 1.
//   - error: InvalidInputError for bad options.
func ProductOfTwo(x, y uint64, opts Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	window := recency.NewWindow(opts.CacheSize)
	total, err := gridMultiplication(x, y, opts.Radix, window)
	if err != nil {
		return 0, err
	}
	return floorScore(total), nil
}

// Product folds ProductOfTwo over a factor list, scoring the sequence of
// two-operand multiplications a person would perform left to right.
func Product(factors []uint64, opts Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if len(factors) < 2 {
		return 0, apperrors.NewInvalidInputError("factors", "need at least 2, got %d", len(factors))
	}
	var total float64
	running := factors[0]
	for _, f := range factors[1:] {
		window := recency.NewWindow(opts.CacheSize)
		step, err := gridMultiplication(running, f, opts.Radix, window)
		if err != nil {
			return 0, err
		}
		total += step
		running *= f
	}
	return floorScore(total), nil
}

// gridMultiplication walks the full digit grid and the partial-row additions,
// returning the raw cost. One recency window spans the whole call: a digit
// fact recalled in row two is still warm from row one.
func gridMultiplication(x, y uint64, radix int, window *recency.Window) (float64, error) {
	dx, err := digit.Decompose(x, radix)
	if err != nil {
		return 0, err
	}
	dy, err := digit.Decompose(y, radix)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, b := range dy {
		for _, a := range dx {
			cost := cellCost(a, b)
			if window.Observe(mulStepKey(a, b)) {
				cost *= RepeatDiscount
			}
			total += cost
		}
	}

	// Sum the shifted partial-product rows into a running total, scoring each
	// combination as a column addition.
	shift := uint64(1)
	running := x * uint64(dy[0])
	for _, b := range dy[1:] {
		shift *= uint64(radix)
		row := x * uint64(b) * shift
		addCost, err := columnAddition([]uint64{running, row}, radix, window)
		if err != nil {
			return 0, err
		}
		total += addCost
		running += row
	}
	return total, nil
}

// cellCost prices recalling a single digit-times-digit fact. Multiplying by
// zero writes a zero, multiplying by one copies the digit; even digits and
// squares get the recognized manual shortcuts.
func cellCost(a, b int) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == 1 || b == 1 {
		return mulUnitCost
	}
	cost := mulCellCost
	if a%2 == 0 {
		cost -= mulEvenDiscount
	}
	if b%2 == 0 {
		cost -= mulEvenDiscount
	}
	if a == b {
		cost -= mulDoubleDiscount
	}
	return cost
}
