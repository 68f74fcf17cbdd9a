package form

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings a Dialog reacts to.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab/enter", "next field")),
		Previous: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Bindings returns the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Submit, k.Cancel}
}

func (k KeyMap) shortHelp() string {
	out := ""
	for i, b := range k.Bindings() {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + ": " + b.Help().Desc
	}
	return out
}
