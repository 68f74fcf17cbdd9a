package form

import (
	"io"
	"slices"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/closet/internal/core/styles"
)

const (
	noneLabel         = "(none)"
	selectMaxVisible  = 8
	selectFieldWidth  = 40
	selectFilterLabel = "/ "
)

type option string

func (o option) FilterValue() string { return string(o) }

type optionDelegate struct{}

func (optionDelegate) Height() int                         { return 1 }
func (optionDelegate) Spacing() int                        { return 0 }
func (optionDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	opt, ok := item.(option)
	if !ok {
		return
	}

	prefix, style := "  ", styles.TextForegroundStyle
	if index == m.Index() {
		prefix, style = "> ", styles.TextPrimaryBoldStyle
	}

	label := string(opt)
	if label == "" {
		label = noneLabel
		if index != m.Index() {
			style = styles.TextMutedStyle
		}
	}

	_, _ = io.WriteString(w, prefix+style.Render(label))
}

// SelectField picks one value from a fixed list. The first option is always
// the empty value, shown as "(none)". A current value missing from options is
// appended so editing never silently drops it.
type SelectField struct {
	label   string
	list    list.Model
	focused bool
}

// NewSelectField creates a select field with current pre-selected.
func NewSelectField(label string, options []string, current string) *SelectField {
	values := append([]string{""}, options...)
	if current != "" && !slices.Contains(values, current) {
		values = append(values, current)
	}

	items := make([]list.Item, len(values))
	for i, v := range values {
		items[i] = option(v)
	}

	l := list.New(items, optionDelegate{}, selectFieldWidth, min(len(values), selectMaxVisible))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(values) > selectMaxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	l.FilterInput.Prompt = selectFilterLabel
	fs := textinput.DefaultStyles(true)
	fs.Focused.Prompt = styles.TextPrimaryStyle
	fs.Cursor.Color = styles.ColorPrimary
	l.FilterInput.SetStyles(fs)

	l.Select(slices.Index(values, current))

	return &SelectField{label: label, list: l}
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectField) View() string {
	title, border := styles.TextMutedStyle, styles.FormFieldStyle
	if f.focused {
		title, border = styles.FormTitleStyle, styles.FormFieldFocusedStyle
	}

	parts := []string{title.Render(f.label)}
	if f.list.SettingFilter() {
		parts = append(parts, f.list.FilterInput.View())
	}
	parts = append(parts, f.list.View())

	return border.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur()         { f.focused = false }
func (f *SelectField) Focused() bool { return f.focused }
func (f *SelectField) Label() string { return f.label }

// Value returns the selected option, "" for none.
func (f *SelectField) Value() any {
	if opt, ok := f.list.SelectedItem().(option); ok {
		return string(opt)
	}
	return ""
}

// IsFiltering reports whether the filter prompt is open.
func (f *SelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}
