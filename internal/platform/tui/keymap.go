package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-jumper/internal/core"
)

// KeyMap holds the in-game key bindings. It doubles as a help.KeyMap.
type KeyMap struct {
	Hop        key.Binding
	Leap       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Hop: key.NewBinding(
			key.WithKeys("left", "a", "h", "1"),
			key.WithHelp("←/a/1", "hop"),
		),
		Leap: key.NewBinding(
			key.WithKeys("right", "d", "l", "2"),
			key.WithHelp("→/d/2", "leap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hop, k.Leap, k.Start, k.Pause, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hop, k.Leap},
		{k.Start, k.Restart, k.Pause},
		{k.Scores, k.Screenshot, k.Quit},
	}
}

// Action translates a key message into a game action.
// Keys handled by the host itself (scores, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Hop):
		return core.ActionHop
	case key.Matches(msg, k.Leap):
		return core.ActionLeap
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MouseAction maps a mouse press to a jump: the left button hops and the
// right button leaps. Releases, motion and the wheel are ignored.
func MouseAction(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.ActionHop
	case tea.MouseButtonRight:
		return core.ActionLeap
	}
	return core.ActionNone
}
