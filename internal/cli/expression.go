package cli

import (
	"strconv"
	"strings"

	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/orchestration"
)

// operatorSymbols maps every accepted operator spelling to its operation.
// Multiplication and division accept both the ASCII and the typographic
// symbol.
var operatorSymbols = []struct {
	symbol string
	op     orchestration.Operation
}{
	{"+", orchestration.OpSum},
	{"-", orchestration.OpDifference},
	{"×", orchestration.OpProduct},
	{"*", orchestration.OpProduct},
	{"x", orchestration.OpProduct},
	{"÷", orchestration.OpDivision},
	{"/", orchestration.OpDivision},
}

// ParseExpression parses a binary scoring expression like "47+38",
// "840 / 35" or "84×32" into its operands and operation.
func ParseExpression(input string) (a, b uint64, op orchestration.Operation, err error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, 0, "", apperrors.NewInvalidInputError("expression", "empty expression")
	}

	for _, candidate := range operatorSymbols {
		idx := strings.Index(trimmed, candidate.symbol)
		if idx <= 0 || idx == len(trimmed)-len(candidate.symbol) {
			continue
		}
		left := strings.TrimSpace(trimmed[:idx])
		right := strings.TrimSpace(trimmed[idx+len(candidate.symbol):])

		a, errA := strconv.ParseUint(left, 10, 64)
		if errA != nil {
			return 0, 0, "", apperrors.NewInvalidInputError("expression", "%q is not a non-negative integer", left)
		}
		b, errB := strconv.ParseUint(right, 10, 64)
		if errB != nil {
			return 0, 0, "", apperrors.NewInvalidInputError("expression", "%q is not a non-negative integer", right)
		}
		return a, b, candidate.op, nil
	}

	return 0, 0, "", apperrors.NewInvalidInputError("expression",
		"%q is not of the form <number><op><number> with op one of + - × ÷", trimmed)
}
