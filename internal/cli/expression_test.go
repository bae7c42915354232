package cli

import (
	"testing"

	"github.com/pencalc/pencalc/internal/orchestration"
)

func TestParseExpression(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		a, b  uint64
		op    orchestration.Operation
	}{
		{"addition", "47+38", 47, 38, orchestration.OpSum},
		{"subtraction", "7032-587", 7032, 587, orchestration.OpDifference},
		{"multiplication ascii", "84*32", 84, 32, orchestration.OpProduct},
		{"multiplication letter", "84x32", 84, 32, orchestration.OpProduct},
		{"multiplication sign", "84×32", 84, 32, orchestration.OpProduct},
		{"division slash", "840/35", 840, 35, orchestration.OpDivision},
		{"division sign", "840÷35", 840, 35, orchestration.OpDivision},
		{"spaces around operator", " 47 + 38 ", 47, 38, orchestration.OpSum},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b, op, err := ParseExpression(tc.input)
			if err != nil {
				t.Fatalf("ParseExpression(%q) failed: %v", tc.input, err)
			}
			if a != tc.a || b != tc.b || op != tc.op {
				t.Errorf("ParseExpression(%q) = (%d, %d, %s), want (%d, %d, %s)",
					tc.input, a, b, op, tc.a, tc.b, tc.op)
			}
		})
	}
}

func TestParseExpressionRejects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"47",
		"+38",
		"47+",
		"a+b",
		"4.5+3",
		"47%38",
	} {
		if _, _, _, err := ParseExpression(input); err == nil {
			t.Errorf("ParseExpression(%q) succeeded, want error", input)
		}
	}
}
