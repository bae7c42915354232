package generate

import (
	"reflect"
	"testing"
)

// drain walks a generator to exhaustion and returns everything it produced.
func drain(g PairGenerator) []Pair {
	var pairs []Pair
	for {
		pair, ok := g.Next()
		if !ok {
			return pairs
		}
		pairs = append(pairs, pair)
	}
}

func TestSumPairs(t *testing.T) {
	t.Parallel()

	t.Run("partitions of four", func(t *testing.T) {
		got := drain(SumPairs(4))
		want := []Pair{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SumPairs(4) = %v, want %v", got, want)
		}
	})

	t.Run("zero target yields the single empty partition", func(t *testing.T) {
		got := drain(SumPairs(0))
		want := []Pair{{0, 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SumPairs(0) = %v, want %v", got, want)
		}
	})

	t.Run("reset restarts the walk", func(t *testing.T) {
		g := SumPairs(2)
		first := drain(g)
		g.Reset()
		second := drain(g)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("walk after Reset = %v, want %v", second, first)
		}
	})
}

func TestDifferencePairs(t *testing.T) {
	t.Parallel()

	t.Run("pairs with difference three up to six", func(t *testing.T) {
		got := drain(DifferencePairs(3, 6))
		want := []Pair{{3, 0}, {4, 1}, {5, 2}, {6, 3}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DifferencePairs(3, 6) = %v, want %v", got, want)
		}
	})

	t.Run("target beyond limit yields nothing", func(t *testing.T) {
		if got := drain(DifferencePairs(10, 5)); got != nil {
			t.Errorf("DifferencePairs(10, 5) = %v, want none", got)
		}
	})

	t.Run("reset restarts the walk", func(t *testing.T) {
		g := DifferencePairs(2, 4)
		first := drain(g)
		g.Reset()
		second := drain(g)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("walk after Reset = %v, want %v", second, first)
		}
	})
}

func TestMultiplePairs(t *testing.T) {
	t.Parallel()

	t.Run("first four multiples of seven", func(t *testing.T) {
		got := drain(MultiplePairs(7, 4))
		want := []Pair{{7, 7}, {14, 7}, {21, 7}, {28, 7}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MultiplePairs(7, 4) = %v, want %v", got, want)
		}
	})

	t.Run("zero divisor yields nothing", func(t *testing.T) {
		if got := drain(MultiplePairs(0, 10)); got != nil {
			t.Errorf("MultiplePairs(0, 10) = %v, want none", got)
		}
	})

	t.Run("zero count yields nothing", func(t *testing.T) {
		if got := drain(MultiplePairs(7, 0)); got != nil {
			t.Errorf("MultiplePairs(7, 0) = %v, want none", got)
		}
	})
}
