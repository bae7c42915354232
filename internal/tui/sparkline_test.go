package tui

import (
	"strings"
	"testing"
)

func TestRingBuffer_PushAndSlice(t *testing.T) {
	rb := NewRingBuffer(3)

	if rb.Len() != 0 {
		t.Errorf("empty buffer Len = %d, want 0", rb.Len())
	}
	if rb.Slice() != nil {
		t.Error("empty buffer Slice should be nil")
	}

	rb.Push(1)
	rb.Push(2)
	rb.Push(3)
	got := rb.Slice()
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Slice len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRingBuffer_OverwritesOldest(t *testing.T) {
	rb := NewRingBuffer(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		rb.Push(v)
	}

	got := rb.Slice()
	want := []float64{3, 4, 5}
	if len(got) != 3 {
		t.Fatalf("Slice len = %d, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if rb.Last() != 5 {
		t.Errorf("Last = %v, want 5", rb.Last())
	}
}

func TestRingBuffer_Reset(t *testing.T) {
	rb := NewRingBuffer(4)
	rb.Push(1)
	rb.Push(2)
	rb.Reset()

	if rb.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", rb.Len())
	}
	if rb.Last() != 0 {
		t.Errorf("Last after Reset = %v, want 0", rb.Last())
	}
}

func TestNewRingBuffer_ClampsCapacity(t *testing.T) {
	rb := NewRingBuffer(0)
	rb.Push(7)
	rb.Push(8)

	if rb.Len() != 1 {
		t.Errorf("Len = %d, want 1", rb.Len())
	}
	if rb.Last() != 8 {
		t.Errorf("Last = %v, want 8", rb.Last())
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty input rendered %q", got)
	}

	got := RenderSparkline([]float64{0, 50, 100})
	if len([]rune(got)) != 3 {
		t.Fatalf("rendered %d runes, want 3", len([]rune(got)))
	}
	runes := []rune(got)
	if runes[0] != '▁' {
		t.Errorf("lowest value rendered %q, want ▁", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("peak value rendered %q, want █", runes[2])
	}
}

func TestRenderSparkline_ScalesToPeak(t *testing.T) {
	// Scores have no fixed ceiling, so the largest sample defines full
	// height regardless of its absolute magnitude.
	small := []rune(RenderSparkline([]float64{1, 2}))
	large := []rune(RenderSparkline([]float64{500, 1000}))

	if small[1] != '█' || large[1] != '█' {
		t.Error("peak sample should always render at full height")
	}
	if small[0] != large[0] {
		t.Errorf("half-of-peak rendered %q and %q, want identical runes", small[0], large[0])
	}
}

func TestRenderSparkline_AllEqual(t *testing.T) {
	got := RenderSparkline([]float64{5, 5, 5})
	if got != strings.Repeat("█", 3) {
		t.Errorf("all-equal input rendered %q, want full blocks", got)
	}
}

func TestRenderPercentTrace(t *testing.T) {
	got := []rune(RenderPercentTrace([]float64{0, 100, 250, -5}))
	if len(got) != 4 {
		t.Fatalf("rendered %d runes, want 4", len(got))
	}
	if got[0] != '▁' {
		t.Errorf("0%% rendered %q, want ▁", got[0])
	}
	if got[1] != '█' || got[2] != '█' {
		t.Error("100% and clamped values should render at full height")
	}
	if got[3] != '▁' {
		t.Errorf("negative value rendered %q, want ▁", got[3])
	}

	// Unlike the score chart, the trace keeps its absolute scale.
	quiet := []rune(RenderPercentTrace([]float64{10, 20}))
	if quiet[1] == '█' {
		t.Error("20% CPU should not render at full height")
	}
}
