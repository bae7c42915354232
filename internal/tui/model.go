// Package tui implements the interactive difficulty explorer: a bubbletea
// dashboard with an expression prompt, a scrolling score log, a sparkline
// of recent scores and live process statistics in the header.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pencalc/pencalc/internal/cli"
	"github.com/pencalc/pencalc/internal/difficulty"
	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/format"
	"github.com/pencalc/pencalc/internal/metrics"
	"github.com/pencalc/pencalc/internal/orchestration"
	"github.com/pencalc/pencalc/internal/sysmon"
)

const (
	// historyLimit caps the score log.
	historyLimit = 200
	// sparklineCapacity is how many recent scores the chart remembers.
	sparklineCapacity = 120
	// cpuTraceCapacity is how many CPU samples the header trace remembers.
	cpuTraceCapacity = 30
	// tickInterval is the statistics sampling period.
	tickInterval = time.Second
	// maxCacheCycle bounds the ctrl+s cache size cycle.
	maxCacheCycle = 6
)

// radixCycle lists the bases ctrl+r steps through.
var radixCycle = []int{2, 8, 10, 12, 16}

// TickMsg drives periodic statistics sampling.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg sysmon.Stats

// MemStatsMsg carries a process memory sample.
type MemStatsMsg metrics.MemorySnapshot

// ScoredMsg carries one finished scoring run.
type ScoredMsg orchestration.ScoreResult

// logEntry is one line of the score log.
type logEntry struct {
	when      time.Time
	statement string
	text      string
	failed    bool
}

// Model is the root bubbletea model for the explorer.
type Model struct {
	input  textinput.Model
	keymap KeyMap

	opts    difficulty.Options
	history []logEntry
	scores  *RingBuffer
	cpu     *RingBuffer
	sys     sysmon.Stats
	mem     metrics.MemorySnapshot

	collector *metrics.MemoryCollector
	paused    bool
	width     int
	height    int
}

// NewModel creates an explorer model starting from the given options.
func NewModel(opts difficulty.Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "expression, e.g. 47+38 or 840/35"
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		input:     ti,
		keymap:    DefaultKeyMap(),
		opts:      opts,
		scores:    NewRingBuffer(sparklineCapacity),
		cpu:       NewRingBuffer(cpuTraceCapacity),
		collector: metrics.NewMemoryCollector(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		sampleSysStatsCmd(),
		sampleMemStatsCmd(m.collector),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.innerWidth() - len(m.input.Prompt) - 1
		return m, nil

	case TickMsg:
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(tickCmd(), sampleSysStatsCmd(), sampleMemStatsCmd(m.collector))

	case SysStatsMsg:
		m.sys = sysmon.Stats(msg)
		m.cpu.Push(m.sys.CPUPercent)
		return m, nil

	case MemStatsMsg:
		m.mem = metrics.MemorySnapshot(msg)
		return m, nil

	case ScoredMsg:
		m.addResult(orchestration.ScoreResult(msg))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Clear):
		m.history = nil
		m.scores.Reset()
		return m, nil

	case key.Matches(msg, m.keymap.CycleRadix):
		m.opts.Radix = nextRadix(m.opts.Radix)
		return m, nil

	case key.Matches(msg, m.keymap.CycleCache):
		m.opts.CacheSize = (m.opts.CacheSize + 1) % (maxCacheCycle + 1)
		return m, nil

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the current expression and launches a scoring command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}

	a, b, op, err := cli.ParseExpression(raw)
	if err != nil {
		m.addError(raw, err)
		m.input.SetValue("")
		return m, nil
	}

	m.input.SetValue("")
	return m, scoreCmd(op, a, b, m.opts)
}

// addResult appends a finished run to the log and the sparkline.
func (m *Model) addResult(res orchestration.ScoreResult) {
	if res.Err != nil {
		m.addError(res.Statement, res.Err)
		return
	}
	m.scores.Push(res.Score)
	m.push(logEntry{
		when:      time.Now(),
		statement: res.Statement,
		text: fmt.Sprintf("difficulty %s (%s)",
			format.Level(res.Score), format.Duration(res.Duration)),
	})
}

func (m *Model) addError(statement string, err error) {
	m.push(logEntry{
		when:      time.Now(),
		statement: statement,
		text:      err.Error(),
		failed:    true,
	})
}

func (m *Model) push(e logEntry) {
	m.history = append(m.history, e)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// nextRadix steps to the next base in the cycle. Bases set from outside the
// cycle, through configuration, fall back to its start.
func nextRadix(current int) int {
	for i, r := range radixCycle {
		if r == current {
			return radixCycle[(i+1)%len(radixCycle)]
		}
	}
	return radixCycle[0]
}

// innerWidth is the usable width inside a bordered panel.
func (m Model) innerWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// logHeight is the number of log lines the middle panel can show.
func (m Model) logHeight() int {
	// header, input panel, chart panel and footer take a fixed slice.
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the explorer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.viewHeader(),
		panelStyle.Width(m.innerWidth() + 2).Render(m.input.View()),
		panelStyle.Width(m.innerWidth() + 2).Height(m.logHeight()).Render(m.viewLog()),
		panelStyle.Width(m.innerWidth() + 2).Render(m.viewChart()),
		m.viewFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("pencalc explorer")
	settings := headerInfoStyle.Render(
		fmt.Sprintf("radix %d · cache %d", m.opts.Radix, m.opts.CacheSize))
	stats := headerDimStyle.Render(fmt.Sprintf("cpu %4.1f%%  mem %4.1f%%  heap %s  gc %d",
		m.sys.CPUPercent, m.sys.MemPercent, formatBytes(m.mem.HeapAlloc), m.mem.NumGC))
	trace := cpuStyle.Render(RenderPercentTrace(m.cpu.Slice()))

	parts := []string{title, settings, stats, trace}
	if m.paused {
		parts = append(parts, pausedStyle.Render("PAUSED"))
	}
	return strings.Join(parts, headerDimStyle.Render(" | "))
}

func (m Model) viewLog() string {
	if len(m.history) == 0 {
		return headerDimStyle.Render("Type an expression and press enter.")
	}

	visible := m.history
	if len(visible) > m.logHeight() {
		visible = visible[len(visible)-m.logHeight():]
	}

	lines := make([]string, len(visible))
	for i, e := range visible {
		stamp := headerDimStyle.Render(e.when.Format("15:04:05"))
		body := scoreStyle.Render(e.text)
		if e.failed {
			body = errorStyle.Render(e.text)
		}
		lines[i] = fmt.Sprintf("%s  %s  %s", stamp, statementStyle.Render(e.statement), body)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewChart() string {
	values := m.scores.Slice()
	if len(values) == 0 {
		return headerDimStyle.Render("no scores yet")
	}
	if len(values) > m.innerWidth() {
		values = values[len(values)-m.innerWidth():]
	}
	label := headerDimStyle.Render(fmt.Sprintf("last %d scores, peak %s",
		len(values), format.Level(maxOf(values))))
	return label + "\n" + sparkStyle.Render(RenderSparkline(values))
}

func (m Model) viewFooter() string {
	parts := make([]string, 0, 6)
	for _, b := range m.keymap.helpBindings() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return " " + strings.Join(parts, footerDescStyle.Render("  ·  "))
}

// Run is the public entry point for the TUI mode. It builds the bubbletea
// program, runs it until quit or context cancellation, and returns the
// application exit code.
func Run(ctx context.Context, opts difficulty.Options) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// scoreCmd returns a command that scores one operation off the UI thread.
func scoreCmd(op orchestration.Operation, a, b uint64, opts difficulty.Options) tea.Cmd {
	return func() tea.Msg {
		return ScoredMsg(orchestration.ScoreOperation(op, a, b, opts))
	}
}

// tickCmd schedules the next statistics sample.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory usage.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}

// sampleMemStatsCmd reads process memory statistics.
func sampleMemStatsCmd(c *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg(c.Snapshot())
	}
}

func maxOf(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
