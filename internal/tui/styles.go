package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pencalc/pencalc/internal/ui"
)

// Style variables for the explorer, initialized from the ui theme system
// via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	headerDimStyle  lipgloss.Style
	headerInfoStyle lipgloss.Style
	scoreStyle      lipgloss.Style
	statementStyle  lipgloss.Style
	errorStyle      lipgloss.Style
	sparkStyle      lipgloss.Style
	cpuStyle        lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	pausedStyle     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all explorer styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	headerDimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	headerInfoStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	scoreStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	statementStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	sparkStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	cpuStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	pausedStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)
}
