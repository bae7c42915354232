package difficulty

import (
	"math"

	"github.com/pencalc/pencalc/internal/digit"
	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/recency"
)

// Difference estimates the difficulty of computing minuend - subtrahend by
// hand: column by column, right to left, threading a borrow. Manual borrow
// subtraction assumes minuend >= subtrahend; anything else is rejected before
// a single column is processed.
//
// The score is integer valued. Repeat discounts can leave the raw total on a
// half point; those round to the nearest integer, halves away from zero.
//
// Returns:
//   - int64: The difficulty score, >= 1.
//   - error: InvalidOperationError when subtrahend > minuend,
//     InvalidInputError for bad options.
func Difference(minuend, subtrahend uint64, opts Options) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if subtrahend > minuend {
		return 0, apperrors.NewInvalidOperationError("difference",
			"subtrahend %d exceeds minuend %d", subtrahend, minuend)
	}
	window := recency.NewWindow(opts.CacheSize)
	total, err := columnSubtraction(minuend, subtrahend, opts.Radix, window)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(floorScore(total))), nil
}

// columnSubtraction walks the manual borrow-subtraction algorithm and returns
// the raw (unfloored) cost. Long division shares this walker, and its recency
// window, for the subtraction step under each quotient digit.
//
// The caller guarantees minuend >= subtrahend, so the walk always retires its
// final borrow.
func columnSubtraction(minuend, subtrahend uint64, radix int, window *recency.Window) (float64, error) {
	ma, err := digit.Decompose(minuend, radix)
	if err != nil {
		return 0, err
	}
	sb, err := digit.Decompose(subtrahend, radix)
	if err != nil {
		return 0, err
	}
	ma, sb = digit.PadToEqualLength(ma, sb)

	var total float64
	borrow := 0
	for col := range ma {
		a, b := ma[col], sb[col]
		if a == b && borrow == 0 {
			// Identical digits cancel: the column is written as 0 unread.
			continue
		}

		borrowOut := 0
		if a-borrow-b < 0 {
			borrowOut = 1
		}
		cost := subColumnCost(a, borrow, borrowOut)
		if window.Observe(subStepKey(a, b, borrow)) {
			cost *= RepeatDiscount
		}
		total += cost
		borrow = borrowOut
	}
	return total, nil
}

// subColumnCost prices one column of the borrow state machine:
// borrow_in -> step cost -> borrow_out.
func subColumnCost(a, borrowIn, borrowOut int) float64 {
	cost := subBaseCost
	cost += subBorrowCost * float64(borrowOut)
	cost += subBorrowInCost * float64(borrowIn)
	if borrowIn == 1 && a == 0 {
		// Trailing 9s: the zero becomes radix-1 and immediately re-borrows,
		// extending the chain one more column.
		cost += subChainCost
	}
	return cost
}
