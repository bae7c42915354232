package sysmon

import "testing"

func TestSample(t *testing.T) {
	s := Sample()

	t.Run("percentages stay in range", func(t *testing.T) {
		if s.CPUPercent < 0 || s.CPUPercent > 100 {
			t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
		}
		if s.MemPercent < 0 || s.MemPercent > 100 {
			t.Errorf("MemPercent out of range: %f", s.MemPercent)
		}
	})

	t.Run("memory usage is observable", func(t *testing.T) {
		if s.MemPercent == 0 {
			t.Error("expected non-zero MemPercent on a running system")
		}
	})
}
