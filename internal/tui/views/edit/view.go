// Package edit implements the closet item editor screen.
package edit

import (
	"context"
	"errors"
	"sync/atomic"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/core/styles"
	"github.com/colonyops/closet/internal/tui/components/form"
	"github.com/colonyops/closet/internal/tui/route"
)

// User-facing messages.
const (
	MsgNotFound   = "Item not found."
	MsgLoadFailed = "Failed to load item."
	MsgSaved      = "Item saved."
	MsgSaveFailed = "Failed to save item."
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

// Deps are the collaborators of the edit View.
type Deps struct {
	Navigator Navigator
	Notifier  Notifier
	Logger    zerolog.Logger
}

// ticket identifies the editor instance a result belongs to. A result from a
// closed editor never matches a later one, even for the same item.
type ticket struct {
	id  string
	seq uint64
}

var editorSeq atomic.Uint64

type itemLoadedMsg struct {
	ticket ticket
	item   closet.Item
	err    error
}

type itemSavedMsg struct {
	ticket ticket
	err    error
}

// Form value names.
const (
	fieldProduct   = "product_name"
	fieldBrand     = "brand"
	fieldPrice     = "price"
	fieldSize      = "size"
	fieldPurchase  = "purchase"
	fieldCategory  = "category"
	fieldMaterials = "materials"
	fieldColors    = "colors"
	fieldStyleTags = "style_tags"
)

// View is the Bubble Tea sub-model for the item editor.
type View struct {
	id      string
	seq     uint64
	store   closet.Store
	nav     Navigator
	notify  Notifier
	log     zerolog.Logger
	spinner spinner.Model

	item   closet.Item
	form   *form.Dialog
	loaded bool
	saving bool
	closed *bool
	width  int
	height int
}

// New creates an editor for the item id.
func New(id string, store closet.Store, deps Deps) View {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return View{
		id:      id,
		seq:     editorSeq.Add(1),
		store:   store,
		nav:     deps.Navigator,
		notify:  deps.Notifier,
		log:     deps.Logger.With().Str("component", "edit").Logger(),
		spinner: s,
		closed:  new(bool),
	}
}

// Init loads the item to edit.
func (v View) Init() tea.Cmd {
	store, t := v.store, v.ticket()
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		item, err := store.FindByID(context.Background(), t.id)
		return itemLoadedMsg{ticket: t, item: item, err: err}
	})
}

func (v View) ticket() ticket { return ticket{id: v.id, seq: v.seq} }

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Close discards any in-flight results.
func (v View) Close() {
	*v.closed = true
}

// Saving reports whether a save is in flight.
func (v View) Saving() bool {
	return v.saving
}

// Update handles messages for the edit view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if *v.closed {
		return v, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case itemLoadedMsg:
		return v.handleLoaded(msg)
	case itemSavedMsg:
		return v.handleSaved(msg)
	case spinner.TickMsg:
		if v.loaded && !v.saving {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.form != nil {
		var cmd tea.Cmd
		v.form, cmd = v.form.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v View) handleLoaded(msg itemLoadedMsg) (View, tea.Cmd) {
	if msg.ticket != v.ticket() || v.loaded {
		v.log.Debug().Str("item_id", msg.ticket.id).Msg("discarding stale load result")
		return v, nil
	}

	switch {
	case msg.err == nil:
		v.item = msg.item
		v.form = newForm(msg.item)
		v.loaded = true
	case errors.Is(msg.err, closet.ErrNotFound):
		v.notify.NotifyError(MsgNotFound)
		v.nav.GoTo(route.List)
	default:
		v.log.Error().Err(msg.err).Str("item_id", v.id).Msg("failed to load item")
		v.notify.NotifyError(MsgLoadFailed)
		v.nav.GoBack()
	}
	return v, nil
}

func (v View) handleSaved(msg itemSavedMsg) (View, tea.Cmd) {
	if msg.ticket != v.ticket() || !v.saving {
		v.log.Debug().Str("item_id", msg.ticket.id).Msg("discarding stale save result")
		return v, nil
	}
	v.saving = false
	if msg.err != nil {
		v.log.Error().Err(msg.err).Str("item_id", v.id).Msg("failed to save item")
		v.notify.NotifyError(MsgSaveFailed)
		v.form.Reset()
		return v, nil
	}
	v.notify.NotifySuccess(MsgSaved)
	v.nav.GoBack()
	return v, nil
}

func (v View) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	if !v.loaded {
		if msg.String() == "esc" {
			v.nav.GoBack()
		}
		return v, nil
	}
	if v.saving {
		return v, nil
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)

	switch {
	case v.form.Cancelled():
		v.nav.GoBack()
		return v, nil
	case v.form.Submitted():
		item, err := apply(v.item, v.form)
		if err == nil {
			err = item.Validate()
		}
		if err != nil {
			v.notify.NotifyError("Invalid item: " + err.Error())
			v.form.Reset()
			return v, cmd
		}
		v.saving = true
		return v, tea.Batch(cmd, v.spinner.Tick, save(v.store, v.ticket(), item))
	}
	return v, cmd
}

func save(store closet.Store, t ticket, item closet.Item) tea.Cmd {
	return func() tea.Msg {
		return itemSavedMsg{ticket: t, err: store.Save(context.Background(), item)}
	}
}

func newForm(item closet.Item) *form.Dialog {
	fields := []form.Field{
		form.NewTextField("Product", "Oxford shirt", item.ProductName).
			WithValidation(form.FieldValidation{Required: true, MaxLength: 120}),
		form.NewTextField("Brand", "", item.Brand),
		form.NewTextField("Price", "39000", closet.PriceInput(item.Price)).
			WithValidation(form.FieldValidation{Numeric: true}),
		form.NewTextField("Size", "M", item.Size),
		form.NewTextField("Purchased", "YYYY-MM", closet.YearMonthInput(item.Purchase)).
			WithValidation(form.FieldValidation{Pattern: purchasePattern}),
		form.NewSelectField("Category", closet.Categories, item.Category),
		form.NewTextField("Materials", "cotton, linen", joinList(item.Materials)),
		form.NewTextField("Colors", "white, navy", joinList(item.Colors)),
		form.NewTextField("Style tags", "casual, office", joinList(item.StyleTags)),
	}
	names := []string{
		fieldProduct, fieldBrand, fieldPrice, fieldSize, fieldPurchase,
		fieldCategory, fieldMaterials, fieldColors, fieldStyleTags,
	}

	return form.NewDialog("Edit item", fields, names)
}

// apply copies the form values onto item. Images and timestamps are kept.
func apply(item closet.Item, d *form.Dialog) (closet.Item, error) {
	price, err := closet.ParsePrice(d.String(fieldPrice))
	if err != nil {
		return item, err
	}
	purchase, err := closet.ParseYearMonth(d.String(fieldPurchase))
	if err != nil {
		return item, err
	}

	item.ProductName = trim(d.String(fieldProduct))
	item.Brand = trim(d.String(fieldBrand))
	item.Price = price
	item.Size = trim(d.String(fieldSize))
	item.Purchase = purchase
	item.Category = d.String(fieldCategory)
	item.Materials = closet.SplitList(d.String(fieldMaterials))
	item.Colors = closet.SplitList(d.String(fieldColors))
	item.StyleTags = closet.SplitList(d.String(fieldStyleTags))
	return item, nil
}

// View renders the editor.
func (v View) View() string {
	header := styles.HeaderStyle.Render("Edit item")
	if !v.loaded {
		return header + "\n" + v.spinner.View() + " " + styles.TextMutedStyle.Render("Loading item…")
	}

	body := v.form.View()
	if v.saving {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "",
			v.spinner.View()+" "+styles.StatusBusyStyle.Render("Saving…"))
	}
	return body
}
