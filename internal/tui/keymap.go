package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the explorer. The expression input
// owns the printable keys, so every action binding uses a control chord.
type KeyMap struct {
	Submit     key.Binding
	Quit       key.Binding
	Clear      key.Binding
	CycleRadix key.Binding
	CycleCache key.Binding
	Pause      key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "score"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		CycleRadix: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "radix"),
		),
		CycleCache: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "cache"),
		),
		Pause: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pause stats"),
		),
	}
}

// helpBindings returns the bindings in footer display order.
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Submit, k.CycleRadix, k.CycleCache, k.Clear, k.Pause, k.Quit}
}
