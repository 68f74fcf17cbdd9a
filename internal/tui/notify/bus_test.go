package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/colonyops/closet/internal/core/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory notify.Store for testing.
type memStore struct {
	items  []notify.Notification
	nextID int64
}

func (m *memStore) Save(_ context.Context, n notify.Notification) (int64, error) {
	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, n)
	return n.ID, nil
}

func (m *memStore) List(_ context.Context) ([]notify.Notification, error) {
	// Return newest first.
	out := make([]notify.Notification, len(m.items))
	for i, n := range m.items {
		out[len(m.items)-1-i] = n
	}
	return out, nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.items = nil
	return nil
}

func (m *memStore) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type failingStore struct{ *memStore }

func (failingStore) Save(context.Context, notify.Notification) (int64, error) {
	return 0, errors.New("disk full")
}

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus(&memStore{})

	var first, second []notify.Notification
	bus.Subscribe(func(n notify.Notification) { first = append(first, n) })
	bus.Subscribe(func(n notify.Notification) { second = append(second, n) })

	bus.Publish(notify.Notification{Level: notify.LevelWarning, Message: "Store is slow."})

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, notify.LevelWarning, first[0].Level)
	assert.Equal(t, first[0], second[0])
}

func TestBus_Notifier_methods_publish_verbatim(t *testing.T) {
	bus := NewBus(&memStore{})

	var received []notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = append(received, n)
	})

	bus.NotifySuccess("Item deleted.")
	bus.NotifyError("100% failed")

	require.Len(t, received, 2)
	assert.Equal(t, notify.LevelSuccess, received[0].Level)
	assert.Equal(t, "Item deleted.", received[0].Message)
	assert.Equal(t, notify.LevelError, received[1].Level)
	assert.Equal(t, "100% failed", received[1].Message)
}

func TestBus_Publish_delivers_when_store_fails(t *testing.T) {
	bus := NewBus(failingStore{&memStore{}})

	var received []notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = append(received, n)
	})

	bus.NotifyError("Failed to load item.")

	require.Len(t, received, 1)
	assert.Zero(t, received[0].ID)
}

func TestBus_Publish_persists_to_store(t *testing.T) {
	store := &memStore{}
	bus := NewBus(store)

	bus.NotifyError("persisted error")

	assert.Len(t, store.items, 1)
	assert.Equal(t, "persisted error", store.items[0].Message)
}

func TestBus_Publish_assigns_id_from_store(t *testing.T) {
	store := &memStore{}
	bus := NewBus(store)

	var received notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = n
	})

	bus.NotifySuccess("get id")

	assert.Equal(t, int64(1), received.ID)
}

func TestBus_History_returns_newest_first(t *testing.T) {
	store := &memStore{}
	bus := NewBus(store)

	bus.NotifySuccess("first")
	bus.NotifySuccess("second")
	bus.NotifySuccess("third")

	history, err := bus.History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "third", history[0].Message)
	assert.Equal(t, "first", history[2].Message)
}

func TestBus_nil_store(t *testing.T) {
	bus := NewBus(nil)

	var received []notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = append(received, n)
	})

	bus.NotifyError("no store")

	assert.Len(t, received, 1)
	assert.Equal(t, "no store", received[0].Message)

	history, err := bus.History(context.Background())
	require.NoError(t, err)
	assert.Nil(t, history)
}

func TestBus_Publish_sets_created_at(t *testing.T) {
	bus := NewBus(&memStore{})

	var received notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = n
	})

	bus.NotifySuccess("timestamp check")
	assert.False(t, received.CreatedAt.IsZero())
}
