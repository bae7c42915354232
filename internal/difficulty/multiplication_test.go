package difficulty

import (
	"errors"
	"testing"

	apperrors "github.com/pencalc/pencalc/internal/errors"
)

// TestProductOfTwo tests grid-multiplication scoring against hand-worked
// values: cell recalls plus the partial-row additions.
func TestProductOfTwo(t *testing.T) {
	tests := []struct {
		name string
		x, y uint64
		want float64
	}{
		{"two by two grid with row addition", 84, 32, 19.0},
		{"one times one is a copy", 1, 1, 1.0},
		{"memorized square", 7, 7, 4.0},
		{"teen square", 12, 12, 8.0},
		{"ones only", 11, 11, 4.5},
		{"round numbers are nearly free", 10, 10, 1.0},
		{"zero operand floors at 1", 0, 5, 1.0},
		{"odd square cells", 25, 25, 17.0},
		{"repeated cell discounted", 22, 3, 6.75},
		{"nine times table", 99, 99, 19.0},
		{"three by two grid", 123, 45, 26.0},
	}

	opts := DefaultOptions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProductOfTwo(tt.x, tt.y, opts)
			if err != nil {
				t.Fatalf("ProductOfTwo(%d, %d) error: %v", tt.x, tt.y, err)
			}
			if got != tt.want {
				t.Errorf("ProductOfTwo(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestProductOfTwo_OrientationMatters verifies the two operand orders are
// scored as distinct problems. 10x101 lays out two rows of two cells while
// 101x10 lays out one productive row, so the scores differ.
func TestProductOfTwo_OrientationMatters(t *testing.T) {
	opts := DefaultOptions()

	ab, err := ProductOfTwo(10, 101, opts)
	if err != nil {
		t.Fatalf("ProductOfTwo(10, 101) error: %v", err)
	}
	ba, err := ProductOfTwo(101, 10, opts)
	if err != nil {
		t.Fatalf("ProductOfTwo(101, 10) error: %v", err)
	}

	if ab != 2.0 {
		t.Errorf("ProductOfTwo(10, 101) = %v, want 2.0", ab)
	}
	if ba != 1.5 {
		t.Errorf("ProductOfTwo(101, 10) = %v, want 1.5", ba)
	}
	if ab == ba {
		t.Error("orientation should distinguish these scores")
	}
}

// TestProduct_FoldsFactorList tests multi-factor products as a left fold.
func TestProduct_FoldsFactorList(t *testing.T) {
	tests := []struct {
		name    string
		factors []uint64
		want    float64
	}{
		{"three small factors", []uint64{2, 3, 4}, 8.5},
		{"powers of five", []uint64{5, 5, 5}, 12.5},
	}

	opts := DefaultOptions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Product(tt.factors, opts)
			if err != nil {
				t.Fatalf("Product(%v) error: %v", tt.factors, err)
			}
			if got != tt.want {
				t.Errorf("Product(%v) = %v, want %v", tt.factors, got, tt.want)
			}
		})
	}
}

// TestProductOfTwo_CacheSizeMonotonicity verifies shrinking memory never
// makes a product easier. 99x99 recalls the same (9,9) cell four times.
func TestProductOfTwo_CacheSizeMonotonicity(t *testing.T) {
	wants := map[int]float64{0: 25.0, 1: 19.0, 2: 19.0, 3: 19.0}
	prev := -1.0
	for size := 3; size >= 0; size-- {
		got, err := ProductOfTwo(99, 99, Options{Radix: 10, CacheSize: size})
		if err != nil {
			t.Fatalf("cache size %d error: %v", size, err)
		}
		if want := wants[size]; got != want {
			t.Errorf("ProductOfTwo(99, 99) cache %d = %v, want %v", size, got, want)
		}
		if prev >= 0 && got < prev {
			t.Errorf("score decreased from %v to %v as cache shrank to %d", prev, got, size)
		}
		prev = got
	}
}

// TestProduct_InvalidInputs tests parameter rejection.
func TestProduct_InvalidInputs(t *testing.T) {
	opts := DefaultOptions()

	if _, err := Product([]uint64{7}, opts); err == nil {
		t.Error("single factor should be rejected")
	}
	if _, err := ProductOfTwo(2, 3, Options{Radix: 1, CacheSize: 3}); err == nil {
		t.Error("radix 1 should be rejected")
	}

	_, err := Product(nil, opts)
	var inputErr apperrors.InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Errorf("error = %T, want InvalidInputError", err)
	}
}
