package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// KeyMap holds the key bindings of the game screen.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Reveal       key.Binding
	Flag         key.Binding
	Chord        key.Binding
	Restart      key.Binding
	Beginner     key.Binding
	Intermediate key.Binding
	Expert       key.Binding
	Custom       key.Binding
	Screenshot   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Chord, k.Restart, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.Chord},
		{k.Beginner, k.Intermediate, k.Expert, k.Custom},
		{k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "reveal"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag"),
		),
		Chord: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chord"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Beginner: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "beginner"),
		),
		Intermediate: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "intermediate"),
		),
		Expert: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "expert"),
		),
		Custom: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "custom"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key to a game action. Platform keys (quit, help,
// screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Reveal, core.ActionReveal},
		{k.Flag, core.ActionFlag},
		{k.Chord, core.ActionChord},
		{k.Restart, core.ActionRestart},
		{k.Beginner, core.ActionBeginner},
		{k.Intermediate, core.ActionIntermediate},
		{k.Expert, core.ActionExpert},
		{k.Custom, core.ActionCustom},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// pointerButton maps a mouse button to a pointer button. Wheel and other
// buttons map to ButtonNone.
func pointerButton(b tea.MouseButton) core.Button {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonLeft
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle
	case tea.MouseButtonRight:
		return core.ButtonRight
	default:
		return core.ButtonNone
	}
}
