package components

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/closet/internal/core/styles"
)

// ConfirmRequest describes a confirmation dialog and its callbacks.
type ConfirmRequest struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Destructive  bool
	OnConfirm    func()
	OnCancel     func()
}

// ConfirmDialog is a two-button confirmation dialog.
type ConfirmDialog struct {
	req             ConfirmRequest
	confirmSelected bool // true = confirm button selected, false = cancel button selected
}

// NewConfirmDialog creates a dialog for req. Destructive dialogs start with
// the cancel button selected.
func NewConfirmDialog(req ConfirmRequest) ConfirmDialog {
	if req.ConfirmLabel == "" {
		req.ConfirmLabel = "Confirm"
	}
	if req.CancelLabel == "" {
		req.CancelLabel = "Cancel"
	}
	return ConfirmDialog{
		req:             req,
		confirmSelected: !req.Destructive,
	}
}

// ToggleSelection switches the selected button.
func (d *ConfirmDialog) ToggleSelection() {
	d.confirmSelected = !d.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (d ConfirmDialog) ConfirmSelected() bool {
	return d.confirmSelected
}

// Request returns the request the dialog was built from.
func (d ConfirmDialog) Request() ConfirmRequest {
	return d.req
}

// View renders the dialog box.
func (d ConfirmDialog) View() string {
	selected := styles.ModalButtonSelectedStyle
	if d.req.Destructive {
		selected = styles.ModalButtonDangerStyle
	}

	var confirmBtn, cancelBtn string
	if d.confirmSelected {
		confirmBtn = selected.Render(d.req.ConfirmLabel)
		cancelBtn = styles.ModalButtonStyle.Render(d.req.CancelLabel)
	} else {
		confirmBtn = styles.ModalButtonStyle.Render(d.req.ConfirmLabel)
		cancelBtn = styles.ModalButtonSelectedStyle.Render(d.req.CancelLabel)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, cancelBtn, "  ", confirmBtn)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.req.Title),
		"",
		d.req.Message,
		buttonRow,
		styles.ModalHelpStyle.Render("←/→ select  enter choose  y/n  esc cancel"),
	)

	return styles.ModalStyle.Render(content)
}

// Overlay renders the dialog centered over background.
func (d ConfirmDialog) Overlay(background string, width, height int) string {
	return placeCenter(background, d.View(), width, height)
}
