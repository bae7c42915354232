package main

import "testing"

// TestScoreTable_CalibrationRows checks that the first four rows reproduce
// the calibration values the weights were frozen against.
func TestScoreTable_CalibrationRows(t *testing.T) {
	entries, err := scoreTable()
	if err != nil {
		t.Fatalf("scoreTable() failed: %v", err)
	}

	want := []struct {
		operation string
		score     float64
	}{
		{"sum", 5.0},
		{"difference", 26},
		{"product", 19.0},
		{"division", 44},
	}
	for i, w := range want {
		if entries[i].Operation != w.operation {
			t.Errorf("row %d operation = %q, want %q", i, entries[i].Operation, w.operation)
		}
		if entries[i].Score != w.score {
			t.Errorf("row %d (%s %d/%d) score = %v, want %v",
				i, entries[i].Operation, entries[i].A, entries[i].B, entries[i].Score, w.score)
		}
	}
}

// TestScoreTable_Properties checks the structural invariants every row must
// satisfy regardless of the weights.
func TestScoreTable_Properties(t *testing.T) {
	entries, err := scoreTable()
	if err != nil {
		t.Fatalf("scoreTable() failed: %v", err)
	}

	if len(entries) != len(scenarios) {
		t.Fatalf("got %d entries for %d scenarios", len(entries), len(scenarios))
	}

	t.Run("every score respects the floor", func(t *testing.T) {
		for _, e := range entries {
			if e.Score < 1 {
				t.Errorf("%s(%d, %d) at radix %d = %v, want >= 1",
					e.Operation, e.A, e.B, e.Radix, e.Score)
			}
		}
	})

	t.Run("disabling the cache never lowers a score", func(t *testing.T) {
		type key struct {
			op   string
			a, b uint64
		}
		cached := map[key]float64{}
		for _, e := range entries {
			if e.Radix == 10 && e.CacheSize == 3 {
				cached[key{e.Operation, e.A, e.B}] = e.Score
			}
		}
		for _, e := range entries {
			if e.Radix != 10 || e.CacheSize != 0 {
				continue
			}
			base, ok := cached[key{e.Operation, e.A, e.B}]
			if !ok {
				continue
			}
			if e.Score < base {
				t.Errorf("%s(%d, %d) without cache = %v, below cached score %v",
					e.Operation, e.A, e.B, e.Score, base)
			}
		}
	})
}
