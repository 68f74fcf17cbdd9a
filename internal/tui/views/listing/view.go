// Package listing implements the closet item list screen.
package listing

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/core/styles"
	"github.com/colonyops/closet/internal/tui/route"
)

// MsgLoadFailed is shown when the list cannot be read.
const MsgLoadFailed = "Failed to load items."

// Navigator moves between screens.
type Navigator interface {
	GoTo(route string)
}

// Notifier shows transient messages to the user.
type Notifier interface {
	NotifyError(msg string)
}

// Deps are the collaborators of the listing View.
type Deps struct {
	Navigator Navigator
	Notifier  Notifier
	Logger    zerolog.Logger
}

type itemsLoadedMsg struct {
	items []closet.Item
	err   error
}

// entry adapts an item to list.DefaultItem.
type entry struct {
	item closet.Item
}

func (e entry) Title() string { return closet.DisplayOr(e.item.ProductName) }

func (e entry) Description() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{e.item.Brand, e.item.Category, e.item.Size} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return closet.Placeholder
	}
	return strings.Join(parts, " · ")
}

func (e entry) FilterValue() string {
	return e.item.ProductName + " " + e.item.Brand + " " + strings.Join(e.item.StyleTags, " ")
}

// View is the Bubble Tea sub-model for the item list.
type View struct {
	list   list.Model
	open   key.Binding
	store  closet.Store
	nav    Navigator
	notify Notifier
	log    zerolog.Logger
	loaded bool
}

// New creates a listing View.
func New(store closet.Store, deps Deps) View {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(styles.ColorPrimary).BorderForeground(styles.ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(styles.ColorSecondary).BorderForeground(styles.ColorPrimary)

	l := list.New(nil, delegate, 80, 20)
	l.Title = styles.IconHanger + " Closet"
	l.Styles.Title = styles.HeaderStyle.MarginBottom(0)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()

	return View{
		list:   l,
		open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open item")),
		store:  store,
		nav:    deps.Navigator,
		notify: deps.Notifier,
		log:    deps.Logger.With().Str("component", "listing").Logger(),
	}
}

// Init loads the items.
func (v View) Init() tea.Cmd {
	return v.Reload()
}

// Reload reads the items again, keeping the cursor and any filter.
func (v View) Reload() tea.Cmd {
	store := v.store
	return func() tea.Msg {
		items, err := store.List(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

// SetSize updates the list dimensions.
func (v *View) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// Close is a no-op; list results are harmless after teardown.
func (v View) Close() {}

// Len returns the number of loaded items.
func (v View) Len() int {
	return len(v.list.Items())
}

// Update handles messages for the listing view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case itemsLoadedMsg:
		return v.handleLoaded(msg)
	case tea.KeyMsg:
		if key.Matches(msg, v.open) && v.list.FilterState() != list.Filtering {
			if e, ok := v.list.SelectedItem().(entry); ok {
				v.nav.GoTo(route.Detail(e.item.ID))
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// Keys returns the bindings shown in the help dialog.
func (v View) Keys() []key.Binding {
	km := v.list.KeyMap
	return []key.Binding{km.CursorUp, km.CursorDown, v.open, km.Filter, km.ClearFilter}
}

// Filtering reports whether the filter input has focus.
func (v View) Filtering() bool {
	return v.list.FilterState() == list.Filtering
}

func (v View) handleLoaded(msg itemsLoadedMsg) (View, tea.Cmd) {
	v.loaded = true
	if msg.err != nil {
		v.log.Error().Err(msg.err).Msg("failed to list items")
		v.notify.NotifyError(MsgLoadFailed)
		return v, nil
	}

	items := make([]list.Item, 0, len(msg.items))
	for _, it := range msg.items {
		items = append(items, entry{item: it})
	}
	return v, v.list.SetItems(items)
}

// View renders the list.
func (v View) View() string {
	if v.loaded && len(v.list.Items()) == 0 {
		return styles.HeaderStyle.Render(v.list.Title) + "\n" +
			styles.TextMutedStyle.Render("No items yet. Add some with `closet import <file>`.")
	}
	return v.list.View()
}
