package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/closet/internal/core/styles"
)

// MenuAction is one entry of an ActionMenu.
type MenuAction struct {
	Label       string
	Destructive bool
	Invoke      func()
}

// ActionMenu is a vertical action sheet anchored to the bottom of the screen.
type ActionMenu struct {
	actions []MenuAction
	cursor  int
}

// NewActionMenu creates a menu with the cursor on the first action.
func NewActionMenu(actions []MenuAction) ActionMenu {
	return ActionMenu{actions: actions}
}

// MoveUp moves the cursor up, stopping at the first action.
func (m *ActionMenu) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last action.
func (m *ActionMenu) MoveDown() {
	if m.cursor < len(m.actions)-1 {
		m.cursor++
	}
}

// Cursor returns the index of the highlighted action.
func (m ActionMenu) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted action.
func (m ActionMenu) Selected() (MenuAction, bool) {
	if len(m.actions) == 0 {
		return MenuAction{}, false
	}
	return m.actions[m.cursor], true
}

// View renders the menu box.
func (m ActionMenu) View() string {
	width := 0
	for _, a := range m.actions {
		width = max(width, lipgloss.Width(a.Label))
	}

	lines := make([]string, 0, len(m.actions))
	for i, a := range m.actions {
		label := a.Label + Pad(width-lipgloss.Width(a.Label))
		if a.Destructive {
			label = styles.MenuItemDangerStyle.Render(label)
		}
		if i == m.cursor {
			lines = append(lines, styles.MenuItemSelectedStyle.Render("> "+label))
		} else {
			lines = append(lines, styles.MenuItemStyle.Render(label))
		}
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(lines, "\n"),
		styles.ModalHelpStyle.Render("↑/↓ move  enter select  esc close"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay composites the menu over background, centered horizontally and
// anchored to the bottom edge.
func (m ActionMenu) Overlay(background string, width, height int) string {
	return placeBottom(background, m.View(), width, height)
}
