package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/data/db"
	"github.com/colonyops/closet/internal/data/stores"
	tuinotify "github.com/colonyops/closet/internal/tui/notify"
	"github.com/colonyops/closet/internal/tui/route"
	"github.com/colonyops/closet/internal/tui/testutil"
	"github.com/colonyops/closet/pkg/tuitest"
)

type appHarness struct {
	t     *testing.T
	m     Model
	store *testutil.Store
}

func newApp(t *testing.T, start string, items ...closet.Item) *appHarness {
	t.Helper()
	return newAppWithBus(t, start, nil, items...)
}

func newAppWithBus(t *testing.T, start string, bus *tuinotify.Bus, items ...closet.Item) *appHarness {
	t.Helper()
	store := testutil.NewStore(items...)
	h := &appHarness{
		t: t,
		m: New(Options{
			Store:    store,
			Bus:      bus,
			Start:    start,
			ToastTTL: time.Second,
			Logger:   zerolog.Nop(),
		}),
		store: store,
	}
	h.update(tuitest.WindowSize(100, 30))
	h.drive(h.m.Init())
	return h
}

// newHeldApp builds the model like newApp but returns the initial screen's
// command instead of running it.
func newHeldApp(t *testing.T, start string, items ...closet.Item) (*appHarness, tea.Cmd) {
	t.Helper()
	store := testutil.NewStore(items...)
	h := &appHarness{
		t:     t,
		m:     New(Options{Store: store, Start: start, ToastTTL: time.Second, Logger: zerolog.Nop()}),
		store: store,
	}
	h.update(tuitest.WindowSize(100, 30))
	return h, h.m.Init()
}

// routeSettledMsg is an inert message that lets the model follow a route
// change made directly on the router.
type routeSettledMsg struct{}

// goHeld navigates to path and returns the new screen's command unrun.
func (h *appHarness) goHeld(path string) tea.Cmd {
	h.m.router.GoTo(path)
	res, cmd := h.m.Update(routeSettledMsg{})
	h.m = res.(Model)
	return cmd
}

// pressHeld delivers a key and returns the resulting command unrun.
func (h *appHarness) pressHeld(msg tea.Msg) tea.Cmd {
	res, cmd := h.m.Update(msg)
	h.m = res.(Model)
	return cmd
}

func (h *appHarness) update(msg tea.Msg) {
	res, cmd := h.m.Update(msg)
	h.m = res.(Model)
	h.drive(cmd)
}

func (h *appHarness) drive(cmd tea.Cmd) {
	for _, msg := range testutil.Collect(cmd) {
		switch msg.(type) {
		case toastTickMsg, tea.QuitMsg:
			continue
		}
		h.update(msg)
	}
}

func (h *appHarness) press(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.update(msg)
	}
}

func (h *appHarness) screen() string {
	return tuitest.StripANSI(h.m.render())
}

func TestApp_OpensItemFromList(t *testing.T) {
	h := newApp(t, "", testutil.Shirt("a"), testutil.Shirt("b"))
	assert.Equal(t, route.List, h.m.Route())

	h.press(tuitest.KeyEnter())

	assert.Equal(t, "/closet/a", h.m.Route())
	out := h.screen()
	assert.Contains(t, out, "Item detail")
	assert.Contains(t, out, "Oxford shirt")
}

func TestApp_DeleteFlow(t *testing.T) {
	h := newApp(t, route.Detail("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyPress('d'))
	require.True(t, h.m.Overlays().ConfirmActive())
	assert.Contains(t, h.screen(), "Delete this item?")

	h.press(tuitest.KeyPress('y'))

	assert.False(t, h.m.Overlays().Active())
	assert.Equal(t, []string{"a"}, h.store.Deletes)
	assert.Equal(t, route.List, h.m.Route())
	out := h.screen()
	assert.Contains(t, out, "Item deleted.")
	assert.Contains(t, out, "No items yet")
}

func TestApp_CancelDelete(t *testing.T) {
	h := newApp(t, route.Detail("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyPress('d'), tuitest.KeyEsc())

	assert.False(t, h.m.Overlays().Active())
	assert.Empty(t, h.store.Deletes)
	assert.Equal(t, "/closet/a", h.m.Route())
}

func TestApp_MissingItemReturnsToList(t *testing.T) {
	h := newApp(t, route.Detail("missing"), testutil.Shirt("a"))

	assert.Equal(t, route.List, h.m.Route())
	assert.Contains(t, h.screen(), "Item not found.")
}

func TestApp_UnknownRouteShowsList(t *testing.T) {
	h := newApp(t, "/nowhere", testutil.Shirt("a"))

	assert.Contains(t, h.screen(), "Oxford shirt")
}

func TestApp_MenuOpensEditor(t *testing.T) {
	h := newApp(t, route.Detail("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyPress('m'))
	require.True(t, h.m.Overlays().MenuActive())

	h.press(tuitest.KeyEnter())
	assert.Equal(t, "/closet/a/edit", h.m.Route())
	assert.Contains(t, h.screen(), "Oxford shirt")

	t.Run("q types into the form", func(t *testing.T) {
		h.press(tuitest.KeyPress('q'))
		assert.False(t, h.m.quitting)
	})

	h.press(tuitest.KeyEsc())
	assert.Equal(t, "/closet/a", h.m.Route())
}

func TestApp_BackStopsAtList(t *testing.T) {
	h := newApp(t, route.Detail("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyEsc())
	assert.Equal(t, route.List, h.m.Route())

	h.press(tuitest.KeyEsc())
	assert.Equal(t, route.List, h.m.Route())
	assert.False(t, h.m.quitting)
}

func TestApp_Help(t *testing.T) {
	h := newApp(t, route.Detail("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyPress('?'))
	require.True(t, h.m.Overlays().Active())
	out := h.screen()
	assert.Contains(t, out, "Keyboard shortcuts")
	assert.Contains(t, out, "next image")

	h.press(tuitest.KeyEsc())
	assert.False(t, h.m.Overlays().Active())
	assert.Equal(t, "/closet/a", h.m.Route(), "esc closes help without navigating")
}

func TestApp_Quit(t *testing.T) {
	h := newApp(t, "", testutil.Shirt("a"))

	res, cmd := h.m.Update(tuitest.KeyPress('q'))
	h.m = res.(Model)

	require.NotNil(t, cmd)
	assert.True(t, h.m.quitting)
}

func TestApp_NotificationHistory(t *testing.T) {
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	bus := tuinotify.NewBus(stores.NewNotifyStore(database))
	h := newAppWithBus(t, route.Detail("missing"), bus)

	h.press(tuitest.KeyPress('n'))

	require.True(t, h.m.Overlays().Active())
	out := h.screen()
	assert.Contains(t, out, "Notifications")
	assert.Contains(t, out, "Item not found.")
}

func TestApp_NotificationHistoryEmpty(t *testing.T) {
	h := newApp(t, "", testutil.Shirt("a"))

	h.press(tuitest.KeyPress('n'))

	assert.Contains(t, h.screen(), "No notifications yet.")
}

func TestApp_ToastLifecycle(t *testing.T) {
	h := newApp(t, "", testutil.Shirt("a"))

	t.Run("dismiss", func(t *testing.T) {
		h.m.bus.NotifyError("boom")
		require.True(t, h.m.toasts.HasToasts())

		h.press(tuitest.KeyPress('x'))
		assert.False(t, h.m.toasts.HasToasts())
	})

	t.Run("expires after ttl", func(t *testing.T) {
		h.m.bus.NotifySuccess("Item saved.")

		ticks := 0
		for h.m.toasts.HasToasts() {
			res, _ := h.m.Update(toastTickMsg(time.Now()))
			h.m = res.(Model)
			ticks++
			require.LessOrEqual(t, ticks, 100)
		}

		assert.Equal(t, int(time.Second/toastTickInterval), ticks)
		assert.False(t, h.m.toasts.ticking, "tick chain stops with the last toast")
	})
}

func TestApp_StaleDetailLoadFromClosedScreen(t *testing.T) {
	denim := closet.Item{ID: "b", ProductName: "Denim jacket"}
	h, heldA := newHeldApp(t, route.Detail("a"), testutil.Shirt("a"), denim)

	h.press(tuitest.KeyEsc())
	require.Equal(t, route.List, h.m.Route())
	heldB := h.goHeld(route.Detail("b"))

	require.NoError(t, h.store.DeleteByID(context.Background(), "a"))
	h.drive(heldA)

	assert.Equal(t, "/closet/b", h.m.Route(), "not-found of the closed screen does not navigate")
	assert.NotContains(t, h.screen(), "Item not found.")

	h.drive(heldB)
	assert.Equal(t, "/closet/b", h.m.Route())
	assert.Contains(t, h.screen(), "Denim jacket")
}

func TestApp_StaleDetailLoadForSameItem(t *testing.T) {
	h, heldFirst := newHeldApp(t, route.Detail("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyEsc())
	heldSecond := h.goHeld(route.Detail("a"))

	require.NoError(t, h.store.DeleteByID(context.Background(), "a"))
	h.drive(heldFirst)

	assert.Equal(t, "/closet/a", h.m.Route())
	assert.Contains(t, h.screen(), "Loading item…")

	h.drive(heldSecond)
	assert.Equal(t, route.List, h.m.Route(), "the open screen's own result still applies")
	assert.Contains(t, h.screen(), "Item not found.")
}

func TestApp_StaleDeleteFromClosedScreen(t *testing.T) {
	h := newApp(t, route.Detail("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyPress('d'))
	heldFirst := h.pressHeld(tuitest.KeyPress('y'))

	h.press(tuitest.KeyEsc())
	require.Equal(t, route.List, h.m.Route())
	h.press(tuitest.KeyEnter())
	require.Equal(t, "/closet/a", h.m.Route())

	h.press(tuitest.KeyPress('d'))
	_ = h.pressHeld(tuitest.KeyPress('y'))

	h.drive(heldFirst)

	assert.Equal(t, "/closet/a", h.m.Route(), "delete result of the closed screen does not navigate")
	out := h.screen()
	assert.NotContains(t, out, "Item deleted.")
	assert.Contains(t, out, "Deleting…")
}

func TestApp_StaleEditLoad(t *testing.T) {
	h, heldFirst := newHeldApp(t, route.Edit("a"), testutil.Shirt("a"))

	h.press(tuitest.KeyEsc())
	require.Equal(t, route.List, h.m.Route())
	h.drive(h.goHeld(route.Edit("a")))
	require.Contains(t, h.screen(), "Oxford shirt")

	renamed := testutil.Shirt("a")
	renamed.ProductName = "Denim jacket"
	require.NoError(t, h.store.Save(context.Background(), renamed))
	h.drive(heldFirst)

	out := h.screen()
	assert.Contains(t, out, "Oxford shirt", "loaded form is kept")
	assert.NotContains(t, out, "Denim jacket")
}

func TestApp_StoreChangeReloadsList(t *testing.T) {
	h := newApp(t, "", testutil.Shirt("a"))
	require.Equal(t, 1, h.m.screen.(*listingScreen).v.Len())

	require.NoError(t, h.store.Save(context.Background(), closet.Item{ID: "b", ProductName: "Selvedge denim"}))
	h.update(storeChangedMsg{})

	assert.Equal(t, 2, h.m.screen.(*listingScreen).v.Len())
	assert.Contains(t, h.screen(), "Selvedge denim")
}

func TestApp_StoreChangeLeavesDetailAlone(t *testing.T) {
	h := newApp(t, route.Detail("a"), testutil.Shirt("a"))
	finds := len(h.store.Finds)

	h.update(storeChangedMsg{})

	assert.Equal(t, "/closet/a", h.m.Route())
	assert.Len(t, h.store.Finds, finds)
}
