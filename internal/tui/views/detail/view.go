package detail

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/core/styles"
)

type itemLoadedMsg struct {
	ticket Ticket
	item   closet.Item
	err    error
}

type itemDeletedMsg struct {
	ticket Ticket
	err    error
}

// View is the Bubble Tea sub-model for the item detail screen.
type View struct {
	ctrl    *Controller
	store   closet.Store
	keys    KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a detail View for the item id.
func New(id string, store closet.Store, deps Deps) View {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return View{
		ctrl:    NewController(id, deps),
		store:   store,
		keys:    DefaultKeyMap(),
		spinner: s,
	}
}

// Controller exposes the underlying state machine.
func (v View) Controller() *Controller {
	return v.ctrl
}

// Keys returns the key bindings of the view.
func (v View) Keys() KeyMap {
	return v.keys
}

// Init starts loading the item.
func (v View) Init() tea.Cmd {
	return v.startLoad()
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Close discards any in-flight results.
func (v View) Close() {
	v.ctrl.Close()
}

// Update handles messages for the detail view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
	case itemLoadedMsg:
		v.ctrl.HandleLoaded(msg.ticket, msg.item, msg.err)
	case itemDeletedMsg:
		v.ctrl.HandleDeleted(msg.ticket, msg.err)
	case spinner.TickMsg:
		if v.ctrl.Busy() {
			v.spinner, cmd = v.spinner.Update(msg)
		}
	case tea.KeyMsg:
		v.handleKey(msg)
	}

	// Overlay callbacks run outside of this Update, so any delete they queued
	// is started on the next message the view receives.
	return v, tea.Batch(cmd, v.startDelete())
}

func (v View) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.ctrl.GoBack()
	case key.Matches(msg, v.keys.Previous):
		v.ctrl.PreviousImage()
	case key.Matches(msg, v.keys.Next):
		v.ctrl.NextImage()
	case key.Matches(msg, v.keys.Edit):
		v.ctrl.RequestEdit()
	case key.Matches(msg, v.keys.Delete):
		v.ctrl.RequestDelete()
	case key.Matches(msg, v.keys.Menu):
		v.ctrl.RequestActionMenu()
	}
}

func (v View) startLoad() tea.Cmd {
	ticket, ok := v.ctrl.Load()
	if !ok {
		return nil
	}
	return tea.Batch(v.spinner.Tick, loadItem(v.store, ticket))
}

func (v View) startDelete() tea.Cmd {
	ticket, ok := v.ctrl.TakePendingDelete()
	if !ok {
		return nil
	}
	return tea.Batch(v.spinner.Tick, deleteItem(v.store, ticket))
}

func loadItem(store closet.Store, ticket Ticket) tea.Cmd {
	return func() tea.Msg {
		item, err := store.FindByID(context.Background(), ticket.ID)
		return itemLoadedMsg{ticket: ticket, item: item, err: err}
	}
}

func deleteItem(store closet.Store, ticket Ticket) tea.Cmd {
	return func() tea.Msg {
		err := store.DeleteByID(context.Background(), ticket.ID)
		return itemDeletedMsg{ticket: ticket, err: err}
	}
}

// View renders the detail screen. Terminal states render nothing.
func (v View) View() string {
	switch v.ctrl.State() {
	case StateLoading:
		return styles.HeaderStyle.Render("Item detail") + "\n" +
			v.spinner.View() + " " + styles.TextMutedStyle.Render("Loading item…")
	case StateNotFound, StateFailed, StateDeleted:
		return ""
	}

	item, _ := v.ctrl.Item()

	footer := styles.HelpStyle.Render(v.keys.shortHelp())
	if v.ctrl.IsDeleting() {
		footer = v.spinner.View() + " " + styles.StatusBusyStyle.Render("Deleting…")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.HeaderStyle.Render("Item detail"),
		renderGallery(v.ctrl.Gallery(), v.galleryWidth()),
		"",
		renderFields(item),
		"",
		footer,
	)
}

func (v View) galleryWidth() int {
	if v.width <= 0 {
		return 40
	}
	return min(max(v.width/2, 24), v.width-2)
}

func renderGallery(g Gallery, width int) string {
	ref, ok := g.Visible()
	if !ok {
		return styles.GalleryFrameStyle.Width(width).Render(styles.GalleryEmptyStyle.Render("No image"))
	}

	body := styles.IconImage + " " + ref
	if !g.ShowControls() {
		return styles.GalleryFrameStyle.Width(width).Render(body)
	}

	body = styles.GalleryArrowStyle.Render(styles.GalleryPrev) + "  " + body + "  " +
		styles.GalleryArrowStyle.Render(styles.GalleryNext)

	dots := make([]string, 0, g.Len())
	for _, on := range g.Indicators() {
		if on {
			dots = append(dots, styles.IndicatorOnStyle.Render(styles.IndicatorActive))
		} else {
			dots = append(dots, styles.IndicatorOffStyle.Render(styles.IndicatorInactive))
		}
	}

	return styles.GalleryFrameStyle.Width(width).Render(body + "\n\n" + strings.Join(dots, " "))
}

func renderFields(item closet.Item) string {
	rows := []struct{ label, value string }{
		{"Product", closet.DisplayOr(item.ProductName)},
		{"Brand", closet.DisplayOr(item.Brand)},
		{"Price", closet.FormatPrice(item.Price)},
		{"Size", closet.DisplayOr(item.Size)},
		{"Purchased", closet.FormatPurchase(item.Purchase)},
		{"Category", closet.DisplayOr(item.Category)},
		{"Materials", closet.Tags(item.Materials)},
		{"Colors", closet.Tags(item.Colors)},
		{"Style tags", renderStyleTags(item.StyleTags)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, styles.FieldLabelStyle.Render(r.label)+styles.FieldValueStyle.Render(r.value))
	}
	return strings.Join(lines, "\n")
}

func renderStyleTags(tags []string) string {
	if len(tags) == 0 {
		return closet.Placeholder
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, styles.TagStyle(t).Render("#"+t))
	}
	return strings.Join(out, " ")
}
