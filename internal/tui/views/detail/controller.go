// Package detail implements the closet item detail screen: loading one item,
// browsing its images, and the edit and delete flows.
package detail

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/tui/route"
)

// State is the lifecycle state of the detail screen.
type State int

const (
	StateLoading State = iota
	StateReady
	StateConfirmingDelete
	StateDeleting
	StateDeleted
	StateNotFound
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateConfirmingDelete:
		return "confirming-delete"
	case StateDeleting:
		return "deleting"
	case StateDeleted:
		return "deleted"
	case StateNotFound:
		return "not-found"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket ties an asynchronous result to the controller that requested it.
// Seq is unique per controller, so a result that outlives its screen never
// matches the controller of a later screen for the same or another item.
type Ticket struct {
	ID  string
	Seq uint64
}

var ticketSeq atomic.Uint64

// Deps are the collaborators of a Controller.
type Deps struct {
	Navigator Navigator
	Notifier  Notifier
	Overlay   OverlayHost
	Logger    zerolog.Logger
}

// Controller holds the detail screen state machine. It contains no Bubble Tea
// dependencies; the View turns tickets into store commands and feeds results
// back through HandleLoaded and HandleDeleted.
type Controller struct {
	id         string
	item       closet.Item
	state      State
	gallery    Gallery
	seq        uint64
	loadIssued bool
	pending    *Ticket
	closed     bool

	nav      Navigator
	notifier Notifier
	overlay  OverlayHost
	log      zerolog.Logger
}

// NewController creates a controller in the loading state for id.
func NewController(id string, deps Deps) *Controller {
	return &Controller{
		id:       id,
		state:    StateLoading,
		seq:      ticketSeq.Add(1),
		nav:      deps.Navigator,
		notifier: deps.Notifier,
		overlay:  deps.Overlay,
		log:      deps.Logger.With().Str("component", "detail").Logger(),
	}
}

// ID returns the identifier of the displayed item.
func (c *Controller) ID() string { return c.id }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Item returns the loaded item. The second result is false until a load
// succeeds.
func (c *Controller) Item() (closet.Item, bool) {
	switch c.state {
	case StateReady, StateConfirmingDelete, StateDeleting:
		return c.item, true
	default:
		return closet.Item{}, false
	}
}

// Gallery returns the image cursor of the loaded item.
func (c *Controller) Gallery() Gallery { return c.gallery }

// IsDeleting reports whether a delete is in flight.
func (c *Controller) IsDeleting() bool { return c.state == StateDeleting }

// Busy reports whether a load or delete is in flight.
func (c *Controller) Busy() bool {
	return c.state == StateLoading || c.state == StateDeleting
}

// Load returns the load ticket. It yields a ticket at most once so the item is
// fetched once per screen.
func (c *Controller) Load() (Ticket, bool) {
	if c.closed || c.state != StateLoading || c.loadIssued {
		return Ticket{}, false
	}
	c.loadIssued = true
	c.log.Debug().Str("item_id", c.id).Uint64("seq", c.seq).Msg("loading item")
	return c.ticket(), true
}

func (c *Controller) ticket() Ticket { return Ticket{ID: c.id, Seq: c.seq} }

// owns reports whether t was issued by this controller.
func (c *Controller) owns(t Ticket) bool { return t == c.ticket() }

// HandleLoaded applies the result of the load identified by t.
func (c *Controller) HandleLoaded(t Ticket, item closet.Item, err error) {
	if c.closed || c.state != StateLoading || !c.owns(t) {
		c.log.Debug().Str("item_id", t.ID).Msg("discarding stale load result")
		return
	}

	switch {
	case err == nil:
		c.item = item
		c.gallery = NewGallery(item.Images)
		c.state = StateReady
	case errors.Is(err, closet.ErrNotFound):
		c.log.Debug().Str("item_id", c.id).Msg("item not found")
		c.state = StateNotFound
		c.notifier.NotifyError(MsgNotFound)
		c.nav.GoTo(route.List)
	default:
		c.log.Error().Err(err).Str("item_id", c.id).Msg("failed to load item")
		c.state = StateFailed
		c.notifier.NotifyError(MsgLoadFailed)
	}
}

// NextImage advances the gallery.
func (c *Controller) NextImage() {
	if _, ok := c.Item(); ok {
		c.gallery.Next()
	}
}

// PreviousImage moves the gallery back.
func (c *Controller) PreviousImage() {
	if _, ok := c.Item(); ok {
		c.gallery.Previous()
	}
}

// RequestEdit navigates to the edit screen of the item.
func (c *Controller) RequestEdit() bool {
	if c.closed || c.state != StateReady {
		return false
	}
	c.nav.GoTo(route.Edit(c.id))
	return true
}

// RequestActionMenu opens the Edit/Delete action menu.
func (c *Controller) RequestActionMenu() bool {
	if c.closed || c.state != StateReady {
		return false
	}
	c.overlay.ShowMenu([]MenuAction{
		{Label: "Edit", Invoke: func() { c.RequestEdit() }},
		{Label: "Delete", Destructive: true, Invoke: func() { c.RequestDelete() }},
	})
	return true
}

// RequestDelete asks the user to confirm deletion.
func (c *Controller) RequestDelete() bool {
	if c.closed || c.state != StateReady {
		return false
	}
	c.state = StateConfirmingDelete
	c.overlay.ShowConfirm(ConfirmRequest{
		Title:        "Delete item",
		Message:      "Delete this item?",
		ConfirmLabel: "Delete",
		CancelLabel:  "Cancel",
		Destructive:  true,
		OnConfirm:    func() { c.ConfirmDelete() },
		OnCancel:     func() { c.CancelDelete() },
	})
	return true
}

// ConfirmDelete dismisses the prompt and queues the delete. The queued ticket
// is collected with TakePendingDelete.
func (c *Controller) ConfirmDelete() bool {
	if c.closed || c.state != StateConfirmingDelete {
		return false
	}
	c.overlay.DismissOverlay()
	c.state = StateDeleting
	t := c.ticket()
	c.pending = &t
	c.log.Debug().Str("item_id", c.id).Msg("deleting item")
	return true
}

// CancelDelete dismisses the prompt and returns to ready.
func (c *Controller) CancelDelete() bool {
	if c.closed || c.state != StateConfirmingDelete {
		return false
	}
	c.overlay.DismissOverlay()
	c.state = StateReady
	return true
}

// TakePendingDelete returns the queued delete ticket once.
func (c *Controller) TakePendingDelete() (Ticket, bool) {
	if c.pending == nil || c.closed {
		return Ticket{}, false
	}
	t := *c.pending
	c.pending = nil
	return t, true
}

// HandleDeleted applies the result of the delete identified by t.
func (c *Controller) HandleDeleted(t Ticket, err error) {
	if c.closed || c.state != StateDeleting || !c.owns(t) {
		c.log.Debug().Str("item_id", t.ID).Msg("discarding stale delete result")
		return
	}

	if err != nil {
		c.log.Error().Err(err).Str("item_id", c.id).Msg("failed to delete item")
		c.state = StateReady
		c.notifier.NotifyError(MsgDeleteFailed)
		return
	}

	c.state = StateDeleted
	c.notifier.NotifySuccess(MsgDeleted)
	c.nav.GoTo(route.List)
}

// GoBack leaves the screen.
func (c *Controller) GoBack() {
	if c.closed {
		return
	}
	c.nav.GoBack()
}

// Close tears the controller down. Results that arrive later are discarded.
func (c *Controller) Close() {
	c.closed = true
	c.pending = nil
}
