package components

import (
	tea "charm.land/bubbletea/v2"
)

// OverlayKeyHandledMsg is delivered to the active screen after the overlay
// consumed a key, so the screen can pick up work queued by overlay callbacks.
type OverlayKeyHandledMsg struct{}

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayMenu
	overlayConfirm
	overlayHelp
	overlayInfo
)

// Overlays is the single overlay slot of the application. At most one of the
// action menu, confirm dialog, help dialog or info dialog is shown at a time;
// showing one replaces whatever was there.
//
// Selecting a menu action or answering a dialog closes the overlay before the
// callback runs, so callbacks may open the next overlay.
type Overlays struct {
	kind    overlayKind
	menu    ActionMenu
	confirm ConfirmDialog
	help    *HelpDialog
	info    *InfoDialog
}

func NewOverlays() *Overlays {
	return &Overlays{}
}

// ShowMenu presents an action menu.
func (o *Overlays) ShowMenu(actions []MenuAction) {
	o.DismissOverlay()
	o.kind = overlayMenu
	o.menu = NewActionMenu(actions)
}

// ShowConfirm presents a confirmation dialog.
func (o *Overlays) ShowConfirm(req ConfirmRequest) {
	o.DismissOverlay()
	o.kind = overlayConfirm
	o.confirm = NewConfirmDialog(req)
}

// ShowHelp presents a key binding help dialog.
func (o *Overlays) ShowHelp(d *HelpDialog) {
	o.DismissOverlay()
	o.kind = overlayHelp
	o.help = d
}

// ShowInfo presents a scrollable info dialog.
func (o *Overlays) ShowInfo(d *InfoDialog) {
	o.DismissOverlay()
	o.kind = overlayInfo
	o.info = d
}

// DismissOverlay closes the active overlay without running any callback.
func (o *Overlays) DismissOverlay() {
	o.kind = overlayNone
	o.menu = ActionMenu{}
	o.confirm = ConfirmDialog{}
	o.help = nil
	o.info = nil
}

// Active reports whether an overlay is shown.
func (o *Overlays) Active() bool {
	return o.kind != overlayNone
}

// MenuActive reports whether the action menu is shown.
func (o *Overlays) MenuActive() bool { return o.kind == overlayMenu }

// ConfirmActive reports whether a confirm dialog is shown.
func (o *Overlays) ConfirmActive() bool { return o.kind == overlayConfirm }

// Menu returns the active action menu.
func (o *Overlays) Menu() ActionMenu { return o.menu }

// Confirm returns the active confirm dialog.
func (o *Overlays) Confirm() ConfirmDialog { return o.confirm }

// HandleKey routes a key press to the active overlay. It returns false when
// no overlay is shown and the key should go to the screen below.
func (o *Overlays) HandleKey(msg tea.KeyMsg) bool {
	switch o.kind {
	case overlayMenu:
		o.handleMenuKey(msg.String())
	case overlayConfirm:
		o.handleConfirmKey(msg.String())
	case overlayHelp:
		switch msg.String() {
		case "esc", "?", "q":
			o.DismissOverlay()
		}
	case overlayInfo:
		switch msg.String() {
		case "j", "down":
			o.info.ScrollDown()
		case "k", "up":
			o.info.ScrollUp()
		case "esc", "q", "n":
			o.DismissOverlay()
		}
	default:
		return false
	}
	return true
}

func (o *Overlays) handleMenuKey(key string) {
	switch key {
	case "up", "k":
		o.menu.MoveUp()
	case "down", "j":
		o.menu.MoveDown()
	case "enter":
		action, ok := o.menu.Selected()
		o.DismissOverlay()
		if ok && action.Invoke != nil {
			action.Invoke()
		}
	case "esc", "q":
		o.DismissOverlay()
	}
}

func (o *Overlays) handleConfirmKey(key string) {
	switch key {
	case "left", "right", "h", "l", "tab", "shift+tab":
		o.confirm.ToggleSelection()
	case "enter":
		if o.confirm.ConfirmSelected() {
			o.answer(true)
		} else {
			o.answer(false)
		}
	case "y", "Y":
		o.answer(true)
	case "n", "N", "esc":
		o.answer(false)
	}
}

func (o *Overlays) answer(confirmed bool) {
	req := o.confirm.Request()
	o.DismissOverlay()

	fn := req.OnCancel
	if confirmed {
		fn = req.OnConfirm
	}
	if fn != nil {
		fn()
	}
}

// Overlay composites the active overlay over background.
func (o *Overlays) Overlay(background string, width, height int) string {
	switch o.kind {
	case overlayMenu:
		return o.menu.Overlay(background, width, height)
	case overlayConfirm:
		return o.confirm.Overlay(background, width, height)
	case overlayHelp:
		return o.help.Overlay(background, width, height)
	case overlayInfo:
		return o.info.Overlay(background, width, height)
	default:
		return background
	}
}
