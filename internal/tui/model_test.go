package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pencalc/pencalc/internal/difficulty"
	"github.com/pencalc/pencalc/internal/orchestration"
)

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	model, ok := m.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", m)
	}
	return model
}

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())

	if m.opts.Radix != difficulty.DefaultRadix {
		t.Errorf("Radix = %d, want %d", m.opts.Radix, difficulty.DefaultRadix)
	}
	if m.paused {
		t.Error("new model should not start paused")
	}
	if !m.input.Focused() {
		t.Error("expression input should start focused")
	}
	if m.Init() == nil {
		t.Error("Init should schedule initial commands")
	}
}

func TestModel_ScoredMsg(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())

	updated, _ := m.Update(ScoredMsg(orchestration.ScoreResult{
		Operation: orchestration.OpDivision,
		Statement: "840 ÷ 35",
		Score:     44,
		Duration:  3 * time.Microsecond,
	}))
	m = asModel(t, updated)

	if len(m.history) != 1 {
		t.Fatalf("history len = %d, want 1", len(m.history))
	}
	if m.history[0].failed {
		t.Error("successful result should not be marked failed")
	}
	if m.scores.Last() != 44 {
		t.Errorf("sparkline last = %v, want 44", m.scores.Last())
	}

	view := sized(m).View()
	if !strings.Contains(view, "840 ÷ 35") {
		t.Error("view should show the scored statement")
	}
	if !strings.Contains(view, "difficulty 44") {
		t.Error("view should show the score")
	}
}

func TestModel_ScoredMsgError(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())

	updated, _ := m.Update(ScoredMsg(orchestration.ScoreResult{
		Operation: orchestration.OpDifference,
		Statement: "35 - 840",
		Err:       errors.New("would go negative"),
	}))
	m = asModel(t, updated)

	if len(m.history) != 1 {
		t.Fatalf("history len = %d, want 1", len(m.history))
	}
	if !m.history[0].failed {
		t.Error("failed result should be marked failed")
	}
	if m.scores.Len() != 0 {
		t.Error("failed results must not enter the sparkline")
	}
}

func TestModel_SubmitInvalidExpression(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())
	m.input.SetValue("not an expression")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asModel(t, updated)

	if cmd != nil {
		t.Error("invalid expression should not launch a scoring command")
	}
	if len(m.history) != 1 || !m.history[0].failed {
		t.Fatal("invalid expression should log one failed entry")
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}
}

func TestModel_SubmitValidExpression(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())
	m.input.SetValue("47+38")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asModel(t, updated)

	if cmd == nil {
		t.Fatal("valid expression should launch a scoring command")
	}
	if len(m.history) != 0 {
		t.Error("nothing should be logged until the command finishes")
	}

	// The command runs off the UI thread and delivers the result message.
	msg := cmd()
	scored, ok := msg.(ScoredMsg)
	if !ok {
		t.Fatalf("command produced %T, want ScoredMsg", msg)
	}
	if scored.Err != nil {
		t.Fatalf("unexpected scoring error: %v", scored.Err)
	}
	if scored.Score != 5 {
		t.Errorf("score = %v, want 5", scored.Score)
	}
}

func TestModel_CycleRadix(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = asModel(t, updated)

	if m.opts.Radix != 12 {
		t.Errorf("radix after one cycle from 10 = %d, want 12", m.opts.Radix)
	}

	// A radix outside the cycle falls back to its start.
	m.opts.Radix = 36
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = asModel(t, updated)
	if m.opts.Radix != 2 {
		t.Errorf("radix after cycling from 36 = %d, want 2", m.opts.Radix)
	}
}

func TestModel_CycleCache(t *testing.T) {
	m := NewModel(difficulty.Options{Radix: 10, CacheSize: maxCacheCycle})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = asModel(t, updated)

	if m.opts.CacheSize != 0 {
		t.Errorf("cache size after cycling from %d = %d, want 0", maxCacheCycle, m.opts.CacheSize)
	}
}

func TestModel_ClearAndPause(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())
	m.addResult(orchestration.ScoreResult{Statement: "47 + 38", Score: 5})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = asModel(t, updated)
	if len(m.history) != 0 || m.scores.Len() != 0 {
		t.Error("clear should drop the log and the sparkline")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = asModel(t, updated)
	if !m.paused {
		t.Error("ctrl+p should pause statistics sampling")
	}

	// Ticks keep the clock alive while paused but skip sampling.
	updated, cmd := m.Update(TickMsg(time.Now()))
	m = asModel(t, updated)
	if cmd == nil {
		t.Error("paused tick should still schedule the next tick")
	}
}

func TestModel_SysStatsFeedTrace(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())

	updated, _ := m.Update(SysStatsMsg{CPUPercent: 42.5, MemPercent: 61.0})
	m = asModel(t, updated)

	if m.cpu.Last() != 42.5 {
		t.Errorf("cpu trace last = %v, want 42.5", m.cpu.Last())
	}
	view := sized(m).View()
	if !strings.Contains(view, "42.5%") {
		t.Error("header should show the CPU reading")
	}
}

func TestModel_ViewBeforeSizing(t *testing.T) {
	m := NewModel(difficulty.DefaultOptions())
	if m.View() != "Initializing..." {
		t.Errorf("unsized view = %q", m.View())
	}
}
