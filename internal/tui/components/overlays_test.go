package components

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/closet/pkg/tuitest"
)

func deleteRequest(confirmed, cancelled *int) ConfirmRequest {
	return ConfirmRequest{
		Title:        "Delete item",
		Message:      "Delete this item?",
		ConfirmLabel: "Delete",
		CancelLabel:  "Cancel",
		Destructive:  true,
		OnConfirm:    func() { *confirmed++ },
		OnCancel:     func() { *cancelled++ },
	}
}

func TestOverlays_Inactive(t *testing.T) {
	o := NewOverlays()

	assert.False(t, o.Active())
	assert.False(t, o.HandleKey(tuitest.KeyEnter()))
	assert.Equal(t, "bg", o.Overlay("bg", 40, 10))
}

func TestOverlays_Menu(t *testing.T) {
	var edits, deletes int
	actions := []MenuAction{
		{Label: "Edit", Invoke: func() { edits++ }},
		{Label: "Delete", Destructive: true, Invoke: func() { deletes++ }},
	}

	t.Run("enter invokes highlighted action and closes", func(t *testing.T) {
		o := NewOverlays()
		o.ShowMenu(actions)
		require.True(t, o.MenuActive())

		assert.True(t, o.HandleKey(tuitest.KeyDown()))
		assert.Equal(t, 1, o.Menu().Cursor())
		o.HandleKey(tuitest.KeyEnter())

		assert.False(t, o.Active())
		assert.Equal(t, 0, edits)
		assert.Equal(t, 1, deletes)
	})

	t.Run("cursor is clamped", func(t *testing.T) {
		o := NewOverlays()
		o.ShowMenu(actions)

		o.HandleKey(tuitest.KeyUp())
		assert.Equal(t, 0, o.Menu().Cursor())
		o.HandleKey(tuitest.KeyDown())
		o.HandleKey(tuitest.KeyDown())
		assert.Equal(t, 1, o.Menu().Cursor())
	})

	t.Run("esc closes without invoking", func(t *testing.T) {
		edits, deletes = 0, 0
		o := NewOverlays()
		o.ShowMenu(actions)

		o.HandleKey(tuitest.KeyEsc())

		assert.False(t, o.Active())
		assert.Zero(t, edits+deletes)
	})

	t.Run("action may open the next overlay", func(t *testing.T) {
		o := NewOverlays()
		var confirmed, cancelled int
		o.ShowMenu([]MenuAction{{Label: "Delete", Invoke: func() {
			o.ShowConfirm(deleteRequest(&confirmed, &cancelled))
		}}})

		o.HandleKey(tuitest.KeyEnter())

		assert.True(t, o.ConfirmActive())
	})

	t.Run("renders labels", func(t *testing.T) {
		o := NewOverlays()
		o.ShowMenu(actions)

		out := tuitest.StripANSI(o.Overlay("", 60, 20))
		assert.Contains(t, out, "> Edit")
		assert.Contains(t, out, "Delete")
	})
}

func TestOverlays_Confirm(t *testing.T) {
	t.Run("destructive dialog defaults to cancel", func(t *testing.T) {
		var confirmed, cancelled int
		o := NewOverlays()
		o.ShowConfirm(deleteRequest(&confirmed, &cancelled))

		assert.False(t, o.Confirm().ConfirmSelected())
		o.HandleKey(tuitest.KeyEnter())

		assert.False(t, o.Active())
		assert.Equal(t, 0, confirmed)
		assert.Equal(t, 1, cancelled)
	})

	t.Run("toggle then enter confirms", func(t *testing.T) {
		var confirmed, cancelled int
		o := NewOverlays()
		o.ShowConfirm(deleteRequest(&confirmed, &cancelled))

		o.HandleKey(tuitest.KeyRight())
		assert.True(t, o.Confirm().ConfirmSelected())
		o.HandleKey(tuitest.KeyEnter())

		assert.Equal(t, 1, confirmed)
		assert.Equal(t, 0, cancelled)
	})

	t.Run("y and n shortcuts", func(t *testing.T) {
		var confirmed, cancelled int
		o := NewOverlays()

		o.ShowConfirm(deleteRequest(&confirmed, &cancelled))
		o.HandleKey(tuitest.KeyPress('y'))
		o.ShowConfirm(deleteRequest(&confirmed, &cancelled))
		o.HandleKey(tuitest.KeyPress('n'))
		o.ShowConfirm(deleteRequest(&confirmed, &cancelled))
		o.HandleKey(tuitest.KeyEsc())

		assert.Equal(t, 1, confirmed)
		assert.Equal(t, 2, cancelled)
	})

	t.Run("dismiss runs no callback", func(t *testing.T) {
		var confirmed, cancelled int
		o := NewOverlays()
		o.ShowConfirm(deleteRequest(&confirmed, &cancelled))

		o.DismissOverlay()

		assert.False(t, o.Active())
		assert.Zero(t, confirmed+cancelled)
	})

	t.Run("renders request text", func(t *testing.T) {
		var confirmed, cancelled int
		o := NewOverlays()
		o.ShowConfirm(deleteRequest(&confirmed, &cancelled))

		out := tuitest.StripANSI(o.Overlay("", 60, 20))
		assert.Contains(t, out, "Delete item")
		assert.Contains(t, out, "Delete this item?")
		assert.Contains(t, out, "Cancel")
	})

	t.Run("default labels", func(t *testing.T) {
		d := NewConfirmDialog(ConfirmRequest{Title: "Sure?"})
		assert.True(t, d.ConfirmSelected())
		assert.Equal(t, "Confirm", d.Request().ConfirmLabel)
		assert.Equal(t, "Cancel", d.Request().CancelLabel)
	})
}

func TestOverlays_HelpAndInfo(t *testing.T) {
	o := NewOverlays()

	o.ShowHelp(NewHelpDialog("Keys", []HelpDialogSection{
		{Title: "Detail", Bindings: []key.Binding{key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))}},
	}))
	assert.Contains(t, tuitest.StripANSI(o.Overlay("", 80, 24)), "delete")
	o.HandleKey(tuitest.KeyPress('?'))
	assert.False(t, o.Active())

	o.ShowInfo(NewInfoDialog(InfoDialogOptions{Title: "Notifications", Help: "esc close"}, 80, 24))
	assert.True(t, o.HandleKey(tuitest.KeyDown()))
	assert.True(t, o.Active())
	o.HandleKey(tuitest.KeyEsc())
	assert.False(t, o.Active())
}
