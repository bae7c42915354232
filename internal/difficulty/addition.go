package difficulty

import (
	"github.com/pencalc/pencalc/internal/digit"
	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/recency"
)

// Sum estimates the difficulty of adding the summands by hand: column by
// column, right to left, threading a carry. Operands of unequal width are
// zero-padded; padding columns participate in carry propagation but copying a
// lone digit down costs nothing measurable.
//
// Parameters:
//   - summands: Two or more operands written one under the other.
//   - opts: Radix and recency window size.
//
// Returns:
//   - float64: The difficulty score, >= 1.
//   - error: InvalidInputError for bad options or fewer than two summands.
func Sum(summands []uint64, opts Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if len(summands) < 2 {
		return 0, apperrors.NewInvalidInputError("summands", "need at least 2, got %d", len(summands))
	}
	window := recency.NewWindow(opts.CacheSize)
	total, err := columnAddition(summands, opts.Radix, window)
	if err != nil {
		return 0, err
	}
	return floorScore(total), nil
}

// SumOfTwo is the common two-operand form of Sum.
func SumOfTwo(a, b uint64, opts Options) (float64, error) {
	return Sum([]uint64{a, b}, opts)
}

// columnAddition walks the manual column-addition algorithm and returns the
// raw (unfloored) cost. The recency window is supplied by the caller so that
// multiplication can share one window between its grid cells and the
// partial-row additions it performs.
func columnAddition(summands []uint64, radix int, window *recency.Window) (float64, error) {
	seqs := make([][]int, len(summands))
	for i, s := range summands {
		seq, err := digit.Decompose(s, radix)
		if err != nil {
			return 0, err
		}
		seqs[i] = seq
	}
	seqs = digit.PadAllToEqualLength(seqs)
	width := len(seqs[0])

	var total float64
	carry := 0
	column := make([]int, len(seqs))
	// Walk every padded column, then keep going while a carry is still live:
	// the final carry is written as an extra leading digit.
	for col := 0; col < width || carry > 0; col++ {
		digitSum := 0
		nonzero := 0
		for i, seq := range seqs {
			d := 0
			if col < width {
				d = seq[col]
			}
			column[i] = d
			digitSum += d
			if d != 0 {
				nonzero++
			}
		}

		if nonzero <= 1 && carry == 0 {
			// Copying a single digit straight down. The column is still
			// walked but priced at zero and leaves the recency window
			// untouched: nothing about it competes with real column sums
			// for discount slots.
			continue
		}

		carryOut := (digitSum + carry) / radix
		cost := addColumnCost(column, digitSum, carry, carryOut, radix)
		if window.Observe(addStepKey(column, carry)) {
			cost *= RepeatDiscount
		}
		total += cost
		carry = carryOut
	}
	return total, nil
}

// addColumnCost prices one column of the addition state machine:
// carry_in -> step cost -> carry_out.
func addColumnCost(column []int, digitSum, carryIn, carryOut, radix int) float64 {
	cost := addBaseCost
	cost += addCarryCost * float64(carryOut)
	cost += addCarryInCost * float64(carryIn)
	if digitSum < radix && digitSum+carryIn >= radix {
		// The column overflows only because of its carry-in.
		cost += addCascadeCost
	}
	if allEqualNonzero(column) {
		cost += addEqualDigitsCost
	}
	return cost
}

// allEqualNonzero reports whether every digit in the column is the same
// nonzero value.
func allEqualNonzero(column []int) bool {
	first := column[0]
	if first == 0 {
		return false
	}
	for _, d := range column[1:] {
		if d != first {
			return false
		}
	}
	return true
}

// floorScore applies the universal score floor: every completed operation
// costs at least 1.
func floorScore(total float64) float64 {
	if total < 1 {
		return 1
	}
	return total
}
