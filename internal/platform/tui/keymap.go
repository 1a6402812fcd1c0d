package tui

import "github.com/charmbracelet/bubbles/key"

// ReplayKeyMap defines the key bindings for the replay viewer.
// The viewer only moves through a recorded run; none of these keys drive
// the rover.
type ReplayKeyMap struct {
	Pause   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Prev, k.Next, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"), // vim-style l
			key.WithHelp("→/l", "step"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"), // vim-style h
			key.WithHelp("←/h", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "home"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
