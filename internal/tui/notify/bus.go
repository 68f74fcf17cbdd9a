// Package notify delivers user-facing notifications inside the TUI.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/closet/internal/core/notify"
)

const persistTimeout = 2 * time.Second

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It dispatches notifications
// to subscribers inline and persists them to a Store. The Bus is safe for use
// from the Bubble Tea Update loop (single-threaded).
//
// Bus satisfies the detail screen's Notifier through NotifySuccess and
// NotifyError.
type Bus struct {
	store       notify.Store
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates a notification bus backed by the given store.
// If store is nil, notifications are dispatched to subscribers but not persisted.
func NewBus(store notify.Store) *Bus {
	return &Bus{
		store: store,
	}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers and persists it to the store.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	// Persist first so the notification has an ID for subscribers.
	if b.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		id, err := b.store.Save(ctx, n)
		cancel()
		if err != nil {
			log.Error().Err(err).Str("message", n.Message).Msg("failed to persist notification")
		} else {
			n.ID = id
		}
	}

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// NotifySuccess publishes msg verbatim at success level.
func (b *Bus) NotifySuccess(msg string) {
	b.Publish(notify.Notification{Level: notify.LevelSuccess, Message: msg})
}

// NotifyError publishes msg verbatim at error level.
func (b *Bus) NotifyError(msg string) {
	b.Publish(notify.Notification{Level: notify.LevelError, Message: msg})
}

// History returns all persisted notifications (newest first).
// Returns nil if no store is configured.
func (b *Bus) History(ctx context.Context) ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(ctx)
}
