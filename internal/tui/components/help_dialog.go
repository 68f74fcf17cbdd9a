// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/closet/internal/core/styles"
)

// HelpDialogSection is a titled group of key bindings. Disabled bindings and
// bindings without help text are left out.
type HelpDialogSection struct {
	Title    string
	Bindings []key.Binding
}

func (s HelpDialogSection) entries() []key.Help {
	out := make([]key.Help, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if !b.Enabled() || b.Help().Key == "" {
			continue
		}
		out = append(out, b.Help())
	}
	return out
}

// HelpDialog lists the key bindings of the active screen and the shell.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
	keyWidth int
}

// NewHelpDialog creates a help dialog. The key column is as wide as the
// longest key across all sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	width := 0
	for _, s := range sections {
		for _, e := range s.entries() {
			width = max(width, lipgloss.Width(e.Key))
		}
	}
	return &HelpDialog{title: title, sections: sections, keyWidth: width + 2}
}

// View renders the dialog box.
func (h *HelpDialog) View() string {
	var b strings.Builder
	b.WriteString(styles.TextForegroundBoldStyle.Render(h.title))

	for _, s := range h.sections {
		entries := s.entries()
		if len(entries) == 0 {
			continue
		}
		b.WriteString("\n\n")
		if s.Title != "" {
			b.WriteString(styles.HelpDialogSectionStyle.Render(s.Title) + "\n")
		}
		for i, e := range entries {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(h.row(e))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDialogHelpStyle.Render("esc/? close"))
	return styles.HelpDialogModalStyle.Render(b.String())
}

func (h *HelpDialog) row(e key.Help) string {
	k := e.Key + Pad(h.keyWidth-lipgloss.Width(e.Key))
	return styles.TextPrimaryBoldStyle.Render(k) + styles.TextForegroundStyle.Render(e.Desc)
}

// Overlay renders the dialog centred over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return placeCenter(background, h.View(), width, height)
}
