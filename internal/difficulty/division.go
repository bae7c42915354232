package difficulty

import (
	"fmt"
	"math"

	"github.com/pencalc/pencalc/internal/digit"
	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/recency"
)

// LongDivision estimates the difficulty of dividing numerator by denominator
// with the long-division algorithm: bring down one numerator digit at a time,
// search for the quotient digit by trial multiplication and comparison, then
// subtract the trial product from the remainder buffer.
//
// The model only supports exact division. A numerator that is not a multiple
// of the denominator is declined outright rather than scored approximately;
// callers needing remainder quotients must pre-filter their inputs.
//
// The score is integer valued; half-point raw totals from repeat discounts
// round to the nearest integer, halves away from zero.
//
// Returns:
//   - int64: The difficulty score, >= 1.
//   - error: UnsupportedOperationError for inexact division,
//     InvalidInputError for a zero denominator or bad options.
func LongDivision(numerator, denominator uint64, opts Options) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, apperrors.NewInvalidInputError("denominator", "must be >= 1")
	}
	if numerator%denominator != 0 {
		return 0, apperrors.NewUnsupportedOperationError("long division",
			"%d is not an exact multiple of %d", numerator, denominator)
	}

	window := recency.NewWindow(opts.CacheSize)
	denomDigits, err := digit.Decompose(denominator, opts.Radix)
	if err != nil {
		return 0, err
	}
	numDigits, err := digit.Decompose(numerator, opts.Radix)
	if err != nil {
		return 0, err
	}

	var total float64
	var buffer uint64
	radix := uint64(opts.Radix)

	for _, d := range digit.Reverse(numDigits) {
		buffer = buffer*radix + uint64(d)
		total += divBringDownCost

		// Ascending quotient-digit search: each trial multiplies the
		// denominator and compares against the buffer, so overshooting the
		// right digit, or starting far below it, is paid for trial by trial.
		q := 0
		for trial := 1; trial < opts.Radix; trial++ {
			cost := divTrialDigitCost*float64(len(denomDigits)) + divCompareCost
			if window.Observe(divStepKey(buffer, denominator, trial)) {
				cost *= RepeatDiscount
			}
			total += cost
			if uint64(trial)*denominator > buffer {
				q = trial - 1
				break
			}
			q = trial
		}

		if q > 0 {
			product := uint64(q) * denominator
			subCost, err := columnSubtraction(buffer, product, opts.Radix, window)
			if err != nil {
				return 0, err
			}
			total += subCost
			buffer -= product
		}
	}

	if buffer != 0 {
		// Unreachable given the exact-division precondition.
		return 0, fmt.Errorf("long division of %d by %d left remainder %d", numerator, denominator, buffer)
	}
	return int64(math.Round(floorScore(total))), nil
}
