package ui

import (
	"strings"

	"github.com/adriangreen/todo-tui/internal/app"
	"github.com/adriangreen/todo-tui/internal/config"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keybindings for the TUI
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	First key.Binding
	Last  key.Binding

	// Task and list operations
	Add     key.Binding
	Sidebar key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Toggle  key.Binding
	Select  key.Binding
	Quit    key.Binding

	// Exit confirmation
	Confirm key.Binding
	Discard key.Binding

	// Text entry
	Submit key.Binding
	Cancel key.Binding
	Erase  key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		First: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "last"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "lists"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle done"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "save & quit"),
		),
		Discard: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "quit without saving"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "erase"),
		),
	}
}

// NewKeyMap creates a keymap with bindings from the config applied.
// A configured value may list several keys separated by commas.
func NewKeyMap(cfg *config.Config) KeyMap {
	km := DefaultKeyMap()
	if cfg == nil {
		return km
	}

	override := func(b *key.Binding, name string) {
		value, ok := cfg.KeyBindings[name]
		if !ok || strings.TrimSpace(value) == "" {
			return
		}
		var keys []string
		for _, k := range strings.Split(value, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		*b = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), b.Help().Desc),
		)
	}

	override(&km.Add, config.BindingAdd)
	override(&km.Sidebar, config.BindingSidebar)
	override(&km.Edit, config.BindingEdit)
	override(&km.Delete, config.BindingDelete)
	override(&km.Toggle, config.BindingToggle)
	override(&km.Quit, config.BindingQuit)
	override(&km.Confirm, config.BindingConfirm)
	override(&km.Discard, config.BindingDiscard)

	return km
}

// Translate converts a terminal key press into the state machine's keys.
//
// On command screens the configured bindings are resolved to the canonical
// keys the state machine dispatches on, so a remapped "add" key still opens
// the Adding screen. On text screens characters are passed through as typed.
// A key with no meaning on the screen becomes app.KeyOther.
func (km KeyMap) Translate(screen app.Screen, msg tea.KeyMsg) []app.Key {
	if screen.CapturesText() {
		return km.translateText(msg)
	}

	other := []app.Key{app.Press(app.KeyOther)}
	nav := func() ([]app.Key, bool) {
		switch {
		case key.Matches(msg, km.Up):
			return []app.Key{app.Press(app.KeyUp)}, true
		case key.Matches(msg, km.Down):
			return []app.Key{app.Press(app.KeyDown)}, true
		case key.Matches(msg, km.First):
			return []app.Key{app.Press(app.KeyLeft)}, true
		case key.Matches(msg, km.Last):
			return []app.Key{app.Press(app.KeyRight)}, true
		}
		return nil, false
	}

	switch screen {
	case app.ScreenMain:
		switch {
		case key.Matches(msg, km.Add):
			return []app.Key{app.Char('a')}
		case key.Matches(msg, km.Sidebar):
			return []app.Key{app.Char('b')}
		case key.Matches(msg, km.Edit):
			return []app.Key{app.Char('e')}
		case key.Matches(msg, km.Delete):
			return []app.Key{app.Char('d')}
		case key.Matches(msg, km.Quit):
			return []app.Key{app.Char('q')}
		case key.Matches(msg, km.Toggle):
			return []app.Key{app.Press(app.KeyEnter)}
		}
		if keys, ok := nav(); ok {
			return keys
		}
		return other

	case app.ScreenSidebar:
		switch {
		case key.Matches(msg, km.Add):
			return []app.Key{app.Char('a')}
		case key.Matches(msg, km.Sidebar):
			return []app.Key{app.Char('b')}
		case key.Matches(msg, km.Select):
			return []app.Key{app.Press(app.KeyEnter)}
		}
		if keys, ok := nav(); ok {
			return keys
		}
		return other

	case app.ScreenExiting:
		switch {
		case key.Matches(msg, km.Confirm):
			return []app.Key{app.Char('y')}
		case key.Matches(msg, km.Discard):
			return []app.Key{app.Char('n')}
		case key.Matches(msg, km.Quit):
			return []app.Key{app.Char('q')}
		}
		return other

	default:
		return other
	}
}

func (km KeyMap) translateText(msg tea.KeyMsg) []app.Key {
	switch {
	case key.Matches(msg, km.Submit):
		return []app.Key{app.Press(app.KeyEnter)}
	case key.Matches(msg, km.Cancel):
		return []app.Key{app.Press(app.KeyEsc)}
	case key.Matches(msg, km.Erase):
		return []app.Key{app.Press(app.KeyBackspace)}
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return []app.Key{app.Press(app.KeyOther)}
		}
		keys := make([]app.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, app.Char(r))
		}
		return keys
	case tea.KeySpace:
		return []app.Key{app.Char(' ')}
	case tea.KeyUp:
		return []app.Key{app.Press(app.KeyUp)}
	case tea.KeyDown:
		return []app.Key{app.Press(app.KeyDown)}
	case tea.KeyLeft:
		return []app.Key{app.Press(app.KeyLeft)}
	case tea.KeyRight:
		return []app.Key{app.Press(app.KeyRight)}
	default:
		return []app.Key{app.Press(app.KeyOther)}
	}
}

// bindingsFor returns the short help shown in the status bar for a screen.
func (km KeyMap) bindingsFor(screen app.Screen, mode app.Mode) []key.Binding {
	switch screen {
	case app.ScreenMain:
		bindings := []key.Binding{km.Up, km.Down, km.Toggle, km.Add, km.Edit, km.Delete}
		if mode == app.ModeGrouped {
			bindings = append(bindings, km.Sidebar)
		}
		return append(bindings, km.Quit)
	case app.ScreenSidebar:
		return []key.Binding{km.Up, km.Down, km.Select, km.Add, km.Sidebar}
	case app.ScreenAdding, app.ScreenAddingList:
		return []key.Binding{km.Submit, km.Erase, km.Cancel}
	case app.ScreenEditing:
		return []key.Binding{km.Erase, km.Cancel}
	case app.ScreenExiting:
		return []key.Binding{km.Confirm, km.Discard}
	default:
		return nil
	}
}
