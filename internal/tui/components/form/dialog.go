// Package form provides a small keyboard-driven form: a Dialog cycling focus
// over text and select fields, with per-field validation on submit.
package form

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/closet/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	names        []string // parallel slice: value name for each field
	focusedField int
	submitted    bool
	cancelled    bool
	keys         KeyMap
	Title        string
}

// NewDialog creates a form dialog with the given fields and value names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, names []string) *Dialog {
	d := &Dialog{
		fields: fields,
		names:  names,
		keys:   DefaultKeyMap(),
		Title:  title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
// Moving past the last field submits; submission is refused while any field is
// invalid and focus jumps to the first invalid field.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch {
	case key.Matches(keyMsg, d.keys.Next):
		if d.isFocusedFieldFiltering() {
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case key.Matches(keyMsg, d.keys.Previous):
		return d.retreatFocus()
	case key.Matches(keyMsg, d.keys.Submit):
		return d.submit()
	case key.Matches(keyMsg, d.keys.Cancel):
		if d.isFocusedFieldFiltering() {
			// Let the field handle esc to exit filter mode
			return d.updateFocusedField(msg)
		}
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders the title and all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	parts := make([]string, 0, len(d.fields)*2+3)
	if d.Title != "" {
		parts = append(parts, styles.FormTitleStyle.Render(d.Title), "")
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	help := styles.FormHelpStyle.Render(d.keys.shortHelp())
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of value names to field values.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for i, field := range d.fields {
		result[d.names[i]] = field.Value()
	}
	return result
}

// String returns the named value as a string, or "" when absent.
func (d *Dialog) String(name string) string {
	for i, n := range d.names {
		if n == name {
			s, _ := d.fields[i].Value().(string)
			return s
		}
	}
	return ""
}

// Focused returns the index of the focused field.
func (d *Dialog) Focused() int { return d.focusedField }

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Reset clears the submitted and cancelled flags so the dialog can be
// submitted again, e.g. after a failed save.
func (d *Dialog) Reset() {
	d.submitted = false
	d.cancelled = false
}

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		return d.submit()
	}

	return d, d.focus(next)
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}
	return d, d.focus(d.focusedField - 1)
}

func (d *Dialog) submit() (*Dialog, tea.Cmd) {
	firstInvalid := -1
	for i, field := range d.fields {
		if v, ok := field.(validator); ok && !v.Validate() && firstInvalid < 0 {
			firstInvalid = i
		}
	}
	if firstInvalid >= 0 {
		return d, d.focus(firstInvalid)
	}

	d.submitted = true
	return d, nil
}

func (d *Dialog) focus(i int) tea.Cmd {
	if i == d.focusedField && d.fields[i].Focused() {
		return nil
	}
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[i].Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
