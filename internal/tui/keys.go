package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	left    key.Binding
	right   key.Binding
	tab     key.Binding
	backtab key.Binding
	enter   key.Binding
	space   key.Binding
	back    key.Binding
	quit    key.Binding
	forceQ  key.Binding
	delete  key.Binding
	copy    key.Binding
	version key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "move")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	space:   key.NewBinding(key.WithKeys(" ")),
	back:    key.NewBinding(key.WithKeys("esc", "backspace", "q"), key.WithHelp("esc", "back")),
	quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	delete:  key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d", "delete")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	version: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	no:      key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
}

// bindings adapts a flat list of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding { return b }

func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

var (
	screenHelp help.KeyMap = bindings{keys.delete, keys.copy, keys.version, keys.quit}
	promptHelp help.KeyMap = bindings{keys.yes, keys.no, keys.left, keys.enter, keys.back}
)
