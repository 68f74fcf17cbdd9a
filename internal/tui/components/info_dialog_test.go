package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/closet/pkg/tuitest"
)

func TestInfoDialog_RendersSectionsItemsFooter(t *testing.T) {
	d := NewInfoDialog(InfoDialogOptions{
		Title: "Notifications",
		Sections: []InfoSection{
			{
				Title: "Today",
				Items: []InfoItem{
					{Label: "10:02", Value: "Item deleted.", Status: InfoStatusPass},
					{Label: "10:01", Value: "Low disk space", Status: InfoStatusWarn},
					{Label: "10:00", Value: "Failed to load item.", Status: InfoStatusFail},
				},
			},
			{
				Title: "Store",
				Items: []InfoItem{
					{Label: "backend", Value: "sqlite"},
				},
			},
		},
		Footer: "3 notifications",
		Help:   "[j/k] scroll  [esc] close",
	}, 120, 40)

	out := tuitest.StripANSI(d.Overlay("bg", 120, 40))
	assert.Contains(t, out, "Notifications")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Item deleted.")
	assert.Contains(t, out, "Failed to load item.")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "3 notifications")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "✘")
}

func TestInfoDialog_ScrollAndEmptySections(t *testing.T) {
	items := make([]InfoItem, 0, 50)
	for range 50 {
		items = append(items, InfoItem{Label: "10:00", Value: "Item deleted."})
	}

	d := NewInfoDialog(InfoDialogOptions{
		Title: "History",
		Sections: []InfoSection{
			{Title: "Many", Items: items},
			{Title: "Empty", Items: nil},
		},
		Help: "help",
	}, 70, 18)

	before := d.Overlay("bg", 70, 18)
	d.ScrollDown()
	after := d.Overlay("bg", 70, 18)

	assert.Contains(t, before, "History")
	assert.Contains(t, after, "History")
	assert.NotEqual(t, before, after)
}
