package detail

import (
	"github.com/colonyops/closet/internal/tui/components"
)

// Navigator moves between screens.
type Navigator interface {
	GoTo(route string)
	GoBack()
}

// Notifier shows transient messages to the user.
type Notifier interface {
	NotifySuccess(msg string)
	NotifyError(msg string)
}

type (
	MenuAction     = components.MenuAction
	ConfirmRequest = components.ConfirmRequest
)

// OverlayHost presents modal surfaces on behalf of the screen. Only one
// overlay is visible at a time.
type OverlayHost interface {
	ShowMenu(actions []MenuAction)
	ShowConfirm(req ConfirmRequest)
	DismissOverlay()
}

// User-facing messages.
const (
	MsgNotFound     = "Item not found."
	MsgLoadFailed   = "Failed to load item."
	MsgDeleted      = "Item deleted."
	MsgDeleteFailed = "Failed to delete item."
)
