// Package digit decomposes non-negative integers into positional digit
// sequences for an arbitrary radix and reconstructs them. All sequences are
// least-significant digit first; callers that walk most-significant first
// (long division) reverse the sequence themselves.
package digit

import (
	apperrors "github.com/pencalc/pencalc/internal/errors"
)

// MinRadix is the smallest positional base the codec accepts.
const MinRadix = 2

// ValidateRadix rejects bases the positional system is not defined for.
func ValidateRadix(radix int) error {
	if radix < MinRadix {
		return apperrors.NewInvalidInputError("radix", "must be >= %d, got %d", MinRadix, radix)
	}
	return nil
}

// Decompose splits n into its digits in the given radix, least-significant
// first. Zero decomposes to a single zero digit, so every operand occupies at
// least one column.
//
// Parameters:
//   - n: The operand to decompose.
//   - radix: The positional base, >= 2.
//
// Returns:
//   - []int: The digit sequence, each value in [0, radix).
//   - error: InvalidInputError when radix < 2.
func Decompose(n uint64, radix int) ([]int, error) {
	if err := ValidateRadix(radix); err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{0}, nil
	}
	r := uint64(radix)
	digits := make([]int, 0, 8)
	for n > 0 {
		digits = append(digits, int(n%r))
		n /= r
	}
	return digits, nil
}

// Recompose is the inverse of Decompose. It rebuilds the integer from a
// least-significant-first digit sequence.
//
// Returns:
//   - uint64: The reconstructed value.
//   - error: InvalidInputError when radix < 2 or a digit is out of range.
func Recompose(digits []int, radix int) (uint64, error) {
	if err := ValidateRadix(radix); err != nil {
		return 0, err
	}
	var n uint64
	r := uint64(radix)
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d < 0 || d >= radix {
			return 0, apperrors.NewInvalidInputError("digits", "digit %d out of range for radix %d", d, radix)
		}
		n = n*r + uint64(d)
	}
	return n, nil
}

// PadToEqualLength left-pads the shorter sequence with zero digits so both
// have equal length. In least-significant-first order the padding appends
// trailing zeros. The common length is the number of columns a column-wise
// walk visits. The inputs are not mutated.
func PadToEqualLength(a, b []int) ([]int, []int) {
	width := max(len(a), len(b))
	return padTo(a, width), padTo(b, width)
}

// PadAllToEqualLength pads every sequence to the longest one, for column
// walks over more than two operands.
func PadAllToEqualLength(seqs [][]int) [][]int {
	width := 0
	for _, s := range seqs {
		width = max(width, len(s))
	}
	padded := make([][]int, len(seqs))
	for i, s := range seqs {
		padded[i] = padTo(s, width)
	}
	return padded
}

// Reverse returns a copy of the sequence in opposite significance order.
func Reverse(digits []int) []int {
	out := make([]int, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = d
	}
	return out
}

// padTo copies s into a slice of the given width, zero-filling the tail.
func padTo(s []int, width int) []int {
	out := make([]int, width)
	copy(out, s)
	return out
}
