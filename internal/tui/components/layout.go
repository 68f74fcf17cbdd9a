package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// Pad returns n spaces, or nothing when n is not positive.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// placeCenter composites fg over bg, centred in a width x height frame.
func placeCenter(bg, fg string, width, height int) string {
	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max((height-lipgloss.Height(fg))/2, 0)
	return place(bg, fg, x, y)
}

// placeBottom composites fg over bg, centred horizontally one row above the
// bottom edge.
func placeBottom(bg, fg string, width, height int) string {
	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max(height-lipgloss.Height(fg)-1, 0)
	return place(bg, fg, x, y)
}

func place(bg, fg string, x, y int) string {
	top := lipgloss.NewLayer(fg).X(x).Y(y).Z(1)
	return lipgloss.NewCompositor(lipgloss.NewLayer(bg), top).Render()
}
