package detail

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/closet/internal/tui/components"
)

// KeyMap holds the detail screen key bindings.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Menu     key.Binding
	Back     key.Binding
}

// DefaultKeyMap returns the default detail bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous image")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Menu:     key.NewBinding(key.WithKeys("m", "."), key.WithHelp("m", "actions")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	}
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Edit, k.Delete, k.Menu, k.Back}
}

// HelpSection returns the bindings as a help dialog section.
func (k KeyMap) HelpSection() components.HelpDialogSection {
	return components.HelpDialogSection{Title: "Item detail", Bindings: k.bindings()}
}

func (k KeyMap) shortHelp() string {
	out := ""
	for i, b := range k.bindings() {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
