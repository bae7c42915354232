// Command generate-golden regenerates the golden score table used by
// regression tests. Run it after a deliberate recalibration of the scoring
// weights, inspect the diff, and commit the result together with the
// constant change that caused it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pencalc/pencalc/internal/difficulty"
)

// goldenEntry is one scored scenario in the regression table.
type goldenEntry struct {
	Operation string  `json:"operation"`
	A         uint64  `json:"a"`
	B         uint64  `json:"b"`
	Radix     int     `json:"radix"`
	CacheSize int     `json:"cache_size"`
	Score     float64 `json:"score"`
}

// scenario is one input to the table, before scoring.
type scenario struct {
	op        string
	a, b      uint64
	radix     int
	cacheSize int
}

// scenarios spans the four operations across the default configuration,
// alternative radices and a disabled recency window. The first four rows
// are the calibration scenarios that froze the weights.
var scenarios = []scenario{
	{"sum", 47, 38, 10, 3},
	{"difference", 7032, 587, 10, 3},
	{"product", 84, 32, 10, 3},
	{"division", 840, 35, 10, 3},

	{"sum", 1, 1, 10, 3},
	{"sum", 999, 1, 10, 3},
	{"sum", 47, 38, 16, 3},
	{"sum", 47, 38, 10, 0},
	{"difference", 1000, 1, 10, 3},
	{"difference", 7032, 587, 10, 0},
	{"product", 84, 32, 10, 0},
	{"product", 12, 12, 10, 3},
	{"division", 840, 35, 10, 0},
	{"division", 6, 3, 2, 3},
	{"division", 144, 12, 10, 3},
}

// scoreTable runs every scenario through the estimators.
func scoreTable() ([]goldenEntry, error) {
	entries := make([]goldenEntry, 0, len(scenarios))
	for _, s := range scenarios {
		opts := difficulty.Options{Radix: s.radix, CacheSize: s.cacheSize}

		var score float64
		var err error
		switch s.op {
		case "sum":
			score, err = difficulty.SumOfTwo(s.a, s.b, opts)
		case "difference":
			var v int64
			v, err = difficulty.Difference(s.a, s.b, opts)
			score = float64(v)
		case "product":
			score, err = difficulty.ProductOfTwo(s.a, s.b, opts)
		case "division":
			var v int64
			v, err = difficulty.LongDivision(s.a, s.b, opts)
			score = float64(v)
		default:
			return nil, fmt.Errorf("unknown operation %q", s.op)
		}
		if err != nil {
			return nil, fmt.Errorf("%s(%d, %d): %w", s.op, s.a, s.b, err)
		}

		entries = append(entries, goldenEntry{
			Operation: s.op,
			A:         s.a,
			B:         s.b,
			Radix:     s.radix,
			CacheSize: s.cacheSize,
			Score:     score,
		})
	}
	return entries, nil
}

func main() {
	output := flag.String("output", "internal/difficulty/testdata/golden_scores.json", "output file")
	flag.Parse()

	entries, err := scoreTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d golden scores to %s\n", len(entries), *output)
}
