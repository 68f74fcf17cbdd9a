package detail

// fakeOverlay records overlay requests. The last request stays open until
// dismissed, so tests can answer it through its callbacks.
type fakeOverlay struct {
	menus     [][]MenuAction
	confirms  []ConfirmRequest
	dismissed int
	open      bool
}

func (o *fakeOverlay) ShowMenu(actions []MenuAction) {
	o.menus = append(o.menus, actions)
	o.open = true
}

func (o *fakeOverlay) ShowConfirm(req ConfirmRequest) {
	o.confirms = append(o.confirms, req)
	o.open = true
}

func (o *fakeOverlay) DismissOverlay() {
	o.dismissed++
	o.open = false
}

func (o *fakeOverlay) lastConfirm() ConfirmRequest {
	return o.confirms[len(o.confirms)-1]
}
