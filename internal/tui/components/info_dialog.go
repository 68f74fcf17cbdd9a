// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/closet/internal/core/styles"
)

// InfoStatus marks an info row with a pass/warn/fail icon.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is a single labeled row in an info section.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups rows under an optional title.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// InfoDialogOptions describes the content of an InfoDialog.
type InfoDialogOptions struct {
	Title    string
	Sections []InfoSection
	Footer   string // shown after the last section, e.g. an empty-state line
	Help     string
}

// infoFrame is the outer size of the dialog for a given terminal size.
type infoFrame struct{ w, h int }

func newInfoFrame(width, height int) infoFrame {
	const (
		maxHeight = 30
		margin    = 4
		minWidth  = 50
	)
	return infoFrame{
		w: min(max(width*65/100, minWidth), width-margin),
		h: min(height-margin, maxHeight),
	}
}

// inner width available for content inside the modal border and padding.
func (f infoFrame) inner() int { return max(f.w-6, 1) }

// InfoDialog is a scrollable, read-only list of labeled rows.
type InfoDialog struct {
	opts     InfoDialogOptions
	viewport viewport.Model
}

// NewInfoDialog creates a dialog sized for a width x height terminal.
func NewInfoDialog(opts InfoDialogOptions, width, height int) *InfoDialog {
	frame := newInfoFrame(width, height)

	// title, divider, help and spacing take 6 rows
	vp := viewport.New(
		viewport.WithWidth(frame.w-4),
		viewport.WithHeight(max(frame.h-6, 1)),
	)
	d := &InfoDialog{opts: opts, viewport: vp}
	d.viewport.SetContent(d.body(frame))
	return d
}

func (d *InfoDialog) body(frame infoFrame) string {
	rule := styles.TextSurfaceStyle.Render(strings.Repeat("─", frame.inner()))

	var b strings.Builder
	for i, section := range d.opts.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if section.Title != "" {
			b.WriteString(styles.HelpDialogSectionStyle.Render(section.Title) + "\n")
			b.WriteString(rule + "\n")
		}
		for _, item := range section.Items {
			b.WriteString(item.render() + "\n")
		}
	}
	if d.opts.Footer != "" {
		b.WriteString("\n" + styles.TextMutedStyle.Render(d.opts.Footer))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (item InfoItem) render() string {
	row := styles.TextForegroundBoldStyle.Render(item.Label) + "  " + styles.TextMutedStyle.Render(item.Value)
	switch item.Status {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render("✔") + " " + row
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render("●") + " " + row
	case InfoStatusFail:
		return styles.TextErrorStyle.Render("✘") + " " + row
	default:
		return row
	}
}

// ScrollUp scrolls the content up one line.
func (d *InfoDialog) ScrollUp() { d.viewport.ScrollUp(1) }

// ScrollDown scrolls the content down one line.
func (d *InfoDialog) ScrollDown() { d.viewport.ScrollDown(1) }

// Overlay renders the dialog centered over background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	frame := newInfoFrame(width, height)

	title := d.opts.Title
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100))
	}

	modal := styles.ModalStyle.
		Width(frame.w).
		Height(frame.h).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			styles.ModalTitleStyle.Render(title),
			styles.TextSurfaceStyle.Render(strings.Repeat("─", frame.inner())),
			d.viewport.View(),
			styles.ModalHelpStyle.Render(d.opts.Help),
		))

	return placeCenter(background, modal, width, height)
}
