package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text and select fields
	Label() string // Display label for the field
}

// validator is implemented by fields that check their own value. Validate
// records the failure for display and reports whether the value is valid.
type validator interface {
	Validate() bool
}
