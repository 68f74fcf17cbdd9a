// Package tui implements the closet terminal user interface.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/core/notify"
	"github.com/colonyops/closet/internal/tui/components"
	tuinotify "github.com/colonyops/closet/internal/tui/notify"
	"github.com/colonyops/closet/internal/tui/route"
	"github.com/colonyops/closet/internal/tui/views/detail"
	"github.com/colonyops/closet/internal/tui/views/edit"
	"github.com/colonyops/closet/internal/tui/views/listing"
)

const (
	defaultWidth   = 80
	defaultHeight  = 24
	historyTimeout = 2 * time.Second
)

// MsgHistoryFailed is shown when the notification history cannot be read.
const MsgHistoryFailed = "Failed to load notifications."

// Options configure the root Model.
type Options struct {
	Store closet.Store
	// Bus delivers notifications. A bus without persistence is created when nil.
	Bus *tuinotify.Bus
	// Start is the initial route, defaulting to the item list.
	Start    string
	ToastTTL time.Duration
	Logger   zerolog.Logger
	// Watcher reports database writes made by other processes. Optional.
	Watcher *StoreWatcher
}

// historyLoadedMsg carries the notification history into the Update loop.
type historyLoadedMsg struct {
	items []notify.Notification
	err   error
}

// Model is the root Bubble Tea model. It owns routing, the overlay slot and
// toasts, and delegates everything else to the active screen.
type Model struct {
	store     closet.Store
	router    *Router
	overlays  *components.Overlays
	bus       *tuinotify.Bus
	toasts    *ToastController
	toastView *ToastView
	keys      GlobalKeys
	watcher   *StoreWatcher
	log       zerolog.Logger

	screen   screen
	width    int
	height   int
	quitting bool
}

// New creates the root model positioned at opts.Start.
func New(opts Options) Model {
	bus := opts.Bus
	if bus == nil {
		bus = tuinotify.NewBus(nil)
	}

	toasts := NewToastController(opts.ToastTTL)
	bus.Subscribe(func(n notify.Notification) {
		toasts.Push(n)
	})

	m := Model{
		store:     opts.Store,
		router:    NewRouter(opts.Start),
		overlays:  components.NewOverlays(),
		bus:       bus,
		toasts:    toasts,
		toastView: NewToastView(toasts),
		keys:      DefaultGlobalKeys(),
		watcher:   opts.Watcher,
		log:       opts.Logger.With().Str("component", "tui").Logger(),
	}
	m.screen = m.newScreen(m.router.Current())
	return m
}

// Route returns the current route.
func (m Model) Route() string {
	return m.router.Current()
}

// Overlays returns the overlay slot shared by all screens.
func (m Model) Overlays() *components.Overlays {
	return m.overlays
}

// Init starts the initial screen and the store watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.screen.Init(), m.watchStore())
}

// Update handles messages for the root model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.SetSize(msg.Width, msg.Height)
		return m, nil
	case toastTickMsg:
		return m.handleToastTick()
	case storeChangedMsg:
		m.log.Debug().Str("route", m.router.Current()).Msg("closet database changed on disk")
		return m.finish(tea.Batch(m.screen.Reload(), m.watchStore()))
	case historyLoadedMsg:
		m.showHistory(msg)
		return m.finish(nil)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.finish(m.screen.Update(msg))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.overlays.Active() && m.overlays.HandleKey(msg) {
		// Overlay callbacks may have changed screen state; let the screen
		// pick up any work they queued.
		return m.finish(m.screen.Update(components.OverlayKeyHandledMsg{}))
	}

	if !m.screen.CapturesInput() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.showHelp()
			return m, nil
		case key.Matches(msg, m.keys.Notifications):
			return m, m.loadHistory()
		case key.Matches(msg, m.keys.DismissToast) && m.toasts.HasToasts():
			m.toasts.Dismiss()
			return m, nil
		}
	}

	return m.finish(m.screen.Update(msg))
}

// finish follows any route change made during the update and keeps the toast
// timer running.
func (m Model) finish(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	return m, tea.Batch(cmd, m.syncRoute(), m.ensureToastTick())
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.screen.Close()
	return m, tea.Quit
}

func (m *Model) syncRoute() tea.Cmd {
	if !m.router.TakeChanged() {
		return nil
	}

	m.screen.Close()
	m.overlays.DismissOverlay()
	m.screen = m.newScreen(m.router.Current())
	m.screen.SetSize(m.width, m.height)

	m.log.Debug().Str("route", m.router.Current()).Msg("navigated")
	return m.screen.Init()
}

func (m *Model) newScreen(path string) screen {
	r := route.Parse(path)
	switch r.Kind {
	case route.KindDetail:
		return &detailScreen{v: detail.New(r.ID, m.store, detail.Deps{
			Navigator: m.router,
			Notifier:  m.bus,
			Overlay:   m.overlays,
			Logger:    m.log,
		})}
	case route.KindEdit:
		return &editScreen{v: edit.New(r.ID, m.store, edit.Deps{
			Navigator: m.router,
			Notifier:  m.bus,
			Logger:    m.log,
		})}
	case route.KindList:
	default:
		m.log.Warn().Str("route", path).Msg("unknown route, showing list")
	}
	return &listingScreen{v: listing.New(m.store, listing.Deps{
		Navigator: m.router,
		Notifier:  m.bus,
		Logger:    m.log,
	})}
}

func (m Model) watchStore() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Start()
}

// ensureToastTick starts the toast timer when toasts are showing and no tick
// chain is running. The chain stops once every toast has expired.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.toasts.StartTicking() {
		return scheduleToastTick()
	}
	return nil
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	if m.toasts.Tick(toastTickInterval) {
		return m, scheduleToastTick()
	}
	return m, nil
}

func (m Model) dims() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) showHelp() {
	sections := append(m.screen.HelpSections(), m.keys.HelpSection())
	m.overlays.ShowHelp(components.NewHelpDialog("Keyboard shortcuts", sections))
}

func (m Model) loadHistory() tea.Cmd {
	bus := m.bus
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		items, err := bus.History(ctx)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m *Model) showHistory(msg historyLoadedMsg) {
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("failed to load notification history")
		m.bus.NotifyError(MsgHistoryFailed)
		return
	}

	items := make([]components.InfoItem, 0, len(msg.items))
	for _, n := range msg.items {
		items = append(items, components.InfoItem{
			Label:  n.CreatedAt.Format("Jan 02 15:04"),
			Value:  n.Message,
			Status: infoStatus(n.Level),
		})
	}

	footer := ""
	if len(items) == 0 {
		footer = "No notifications yet."
	}

	w, h := m.dims()
	m.overlays.ShowInfo(components.NewInfoDialog(components.InfoDialogOptions{
		Title:    "Notifications",
		Sections: []components.InfoSection{{Title: "Recent", Items: items}},
		Footer:   footer,
		Help:     "j/k scroll • esc close",
	}, w, h))
}

func infoStatus(level notify.Level) components.InfoStatus {
	switch level {
	case notify.LevelSuccess:
		return components.InfoStatusPass
	case notify.LevelWarning:
		return components.InfoStatusWarn
	case notify.LevelError:
		return components.InfoStatusFail
	default:
		return components.InfoStatusNone
	}
}

// View renders the active screen with overlays and toasts on top.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	w, h := m.dims()
	content := m.screen.View()
	if m.overlays.Active() {
		content = m.overlays.Overlay(content, w, h)
	}
	if m.toasts.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}
