package tui

import (
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const storeDebounce = 100 * time.Millisecond

// storeChangedMsg is sent when the closet database changes on disk.
type storeChangedMsg struct{}

// StoreWatcher watches the closet database and its write-ahead log so the
// list picks up items written by other closet commands.
type StoreWatcher struct {
	watcher     *fsnotify.Watcher
	names       map[string]bool
	debounceDur time.Duration
	log         zerolog.Logger
}

// NewStoreWatcher watches the directory holding dbPath. Only events for the
// database file and its -wal companion are reported.
func NewStoreWatcher(dbPath string, log zerolog.Logger) (*StoreWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(dbPath)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	base := filepath.Base(dbPath)
	return &StoreWatcher{
		watcher:     watcher,
		names:       map[string]bool{base: true, base + "-wal": true},
		debounceDur: storeDebounce,
		log:         log.With().Str("component", "store-watcher").Logger(),
	}, nil
}

// Start returns a command that blocks until the database changes. The
// command yields nil once the watcher is closed. Callers re-arm it after
// each storeChangedMsg.
func (w *StoreWatcher) Start() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.relevant(event) {
					continue
				}

				// A single commit touches the WAL several times.
				time.Sleep(w.debounceDur)
				w.drain()
				return storeChangedMsg{}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				w.log.Warn().Err(err).Msg("watch error")
			}
		}
	}
}

// Close stops watching. A pending Start command returns nil.
func (w *StoreWatcher) Close() error {
	return w.watcher.Close()
}

func (w *StoreWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return w.names[filepath.Base(event.Name)]
}

func (w *StoreWatcher) drain() {
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
