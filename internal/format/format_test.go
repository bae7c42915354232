package format

import (
	"math"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds", 3 * time.Second, "3s"},
		{"zero", 0, "0µs"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Duration(tc.d); got != tc.want {
				t.Errorf("Duration(%v) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value float64
		want  string
	}{
		{"whole score", 5, "5"},
		{"half score", 12.5, "12.5"},
		{"two decimals", 3.25, "3.25"},
		{"infinity", math.Inf(1), "∞"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Level(tc.value); got != tc.want {
				t.Errorf("Level(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}
