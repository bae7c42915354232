package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/pencalc/pencalc/internal/difficulty"
)

// runSession feeds a scripted session to the REPL and returns its output.
func runSession(t *testing.T, script string) string {
	t.Helper()
	withoutColor(t)

	repl := NewREPL(difficulty.DefaultOptions())
	repl.SetInput(strings.NewReader(script))
	var out strings.Builder
	repl.SetOutput(&out)
	repl.Start(context.Background())
	return out.String()
}

func TestREPLScoresExpression(t *testing.T) {
	out := runSession(t, "47+38\nexit\n")

	if !strings.Contains(out, "47 + 38") || !strings.Contains(out, "difficulty 5") {
		t.Errorf("session output %q is missing the score", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("session output %q is missing the farewell", out)
	}
}

func TestREPLCompare(t *testing.T) {
	out := runSession(t, "compare 840/35\nquit\n")

	for _, want := range []string{"Comparison Summary", "840 + 35", "840 ÷ 35", "44"} {
		if !strings.Contains(out, want) {
			t.Errorf("session output is missing %q", want)
		}
	}
}

func TestREPLChangesParameters(t *testing.T) {
	out := runSession(t, "radix 16\ncache 0\nstatus\nexit\n")

	for _, want := range []string{"radix set to 16", "recency window set to 0", "radix=16, recency window=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("session output is missing %q", want)
		}
	}
}

func TestREPLRejectsBadInput(t *testing.T) {
	out := runSession(t, "radix 1\nnonsense\nexit\n")

	if !strings.Contains(out, "radix") || !strings.Contains(out, "help") {
		t.Errorf("session output %q is missing error feedback", out)
	}
}

func TestREPLFactors(t *testing.T) {
	out := runSession(t, "factors 360\nfactors 97\nfactors 1\nexit\n")

	for _, want := range []string{"360 = 2^3 × 3^2 × 5", "97 = 97", "1 has no prime factors"} {
		if !strings.Contains(out, want) {
			t.Errorf("session output is missing %q", want)
		}
	}
}

func TestREPLPairs(t *testing.T) {
	out := runSession(t, "pairs 12\nexit\n")

	for _, want := range []string{"1 × 12 = 12", "3 × 4 = 12", "4 × 3 = 12", "6 factor pairs", "difficulty"} {
		if !strings.Contains(out, want) {
			t.Errorf("session output is missing %q", want)
		}
	}
}

func TestREPLFactorsRejectsBadValues(t *testing.T) {
	out := runSession(t, "factors\nfactors zero\npairs 0\nexit\n")

	if !strings.Contains(out, "Usage: factors <n>") {
		t.Error("missing factors usage hint")
	}
	if strings.Count(out, "Invalid value") != 2 {
		t.Errorf("session output %q should reject both bad values", out)
	}
}

func TestREPLExitsOnEOF(t *testing.T) {
	out := runSession(t, "47+38\n")

	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("session output %q is missing the EOF farewell", out)
	}
}
