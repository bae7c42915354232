package difficulty

// ─────────────────────────────────────────────────────────────────────────────
// Scoring Weights
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants were calibrated so that the four golden regression scenarios
// in golden_test.go reproduce exactly at the default radix and cache size, and
// are frozen: changing any of them silently rescales every score ever reported.
// All weights are multiples of 0.5, which together with the 0.5 repeat discount
// keeps every floating-point score exactly representable.

const (
	// RepeatDiscount scales the cost of an elementary step whose key is still
	// inside the recency window. Half credit: the answer is remembered, but
	// writing it down is not free.
	RepeatDiscount = 0.5
)

// Column addition weights.
const (
	// addBaseCost is charged for any column that needs actual digit addition.
	addBaseCost = 1.0

	// addCarryCost is charged per unit of carry generated by a column.
	// Producing a carry means holding an extra digit in mind while already
	// mid-column, which dominates the base cost.
	addCarryCost = 2.0

	// addCarryInCost is charged per unit of carry consumed by a column.
	addCarryInCost = 1.0

	// addCascadeCost is charged when a column overflows only because of its
	// carry-in, extending a carry chain that would otherwise have stopped.
	addCascadeCost = 1.0

	// addEqualDigitsCost is charged when all addend digits in a column are
	// equal and nonzero. Doubles invite a learned-fact shortcut that then has
	// to be reconciled with the carry state, which trips people up.
	addEqualDigitsCost = 1.0
)

// Column subtraction weights. Integer-valued by calibration.
const (
	// subBaseCost is charged for any column that needs actual subtraction.
	subBaseCost = 1.0

	// subBorrowCost is charged when a column must borrow from its neighbour.
	// Borrowing is the most error-prone single action in manual subtraction.
	subBorrowCost = 4.0

	// subBorrowInCost is charged when a column starts already owing a borrow.
	subBorrowInCost = 3.0

	// subChainCost is the extra increment for a zero minuend digit inside an
	// active borrow chain: the digit becomes radix-1 and must itself borrow
	// again (the "trailing 9s" rule).
	subChainCost = 1.0
)

// Grid multiplication cell weights.
const (
	// mulCellCost is the generic cost of recalling one digit-times-digit fact.
	mulCellCost = 5.0

	// mulEvenDiscount is subtracted once per even digit in a cell. Even rows
	// of the multiplication table are the ones people can halve or double
	// their way into.
	mulEvenDiscount = 0.5

	// mulDoubleDiscount is subtracted when both digits are equal: squares are
	// memorized as a unit.
	mulDoubleDiscount = 1.0

	// mulUnitCost is the cost of a cell involving the digit 1, which is a
	// copy rather than a recall.
	mulUnitCost = 1.0
)

// Long division weights. Integer-valued by calibration.
const (
	// divTrialDigitCost is charged per denominator digit per trial
	// multiplication: each trial product is worked out digit by digit.
	divTrialDigitCost = 1.0

	// divCompareCost is charged for comparing a trial product against the
	// remainder buffer.
	divCompareCost = 2.0

	// divBringDownCost is charged for bringing down each numerator digit and
	// extending the remainder buffer.
	divBringDownCost = 2.0
)
