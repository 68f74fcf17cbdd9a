package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/closet/internal/tui/components"
)

// GlobalKeys are handled by the root model before the active screen.
type GlobalKeys struct {
	Quit          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	Notifications key.Binding
	DismissToast  key.Binding
}

// DefaultGlobalKeys returns the default root bindings.
func DefaultGlobalKeys() GlobalKeys {
	return GlobalKeys{
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		DismissToast:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toast")),
	}
}

// HelpSection returns the global bindings as a help dialog section.
func (k GlobalKeys) HelpSection() components.HelpDialogSection {
	return components.HelpDialogSection{
		Title:    "General",
		Bindings: []key.Binding{k.Help, k.Notifications, k.DismissToast, k.Quit},
	}
}
