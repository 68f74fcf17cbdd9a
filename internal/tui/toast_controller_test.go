package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/closet/internal/core/notify"
)

var (
	deleted      = notify.Notification{Level: notify.LevelSuccess, Message: "Item deleted."}
	saved        = notify.Notification{Level: notify.LevelSuccess, Message: "Item saved."}
	deleteFailed = notify.Notification{Level: notify.LevelError, Message: "Failed to delete item."}
	notFound     = notify.Notification{Level: notify.LevelError, Message: "Item not found."}
)

func TestToastController_Push(t *testing.T) {
	t.Run("default ttl", func(t *testing.T) {
		c := NewToastController(0)
		c.Push(deleted)

		require.Len(t, c.Toasts(), 1)
		assert.Equal(t, "Item deleted.", c.Toasts()[0].notification.Message)
		assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
		assert.Equal(t, 1, c.Toasts()[0].count)
	})

	t.Run("errors stay longer", func(t *testing.T) {
		c := NewToastController(time.Second)
		c.Push(saved)
		c.Push(deleteFailed)

		assert.Equal(t, time.Second, c.Toasts()[0].remaining)
		assert.Equal(t, 2*time.Second, c.Toasts()[1].remaining)
	})

	t.Run("repeat of the newest folds into it", func(t *testing.T) {
		c := NewToastController(time.Second)
		c.Push(deleteFailed)
		c.Tick(500 * time.Millisecond)
		c.Push(deleteFailed)

		require.Len(t, c.Toasts(), 1)
		assert.Equal(t, 2, c.Toasts()[0].count)
		assert.Equal(t, 2*time.Second, c.Toasts()[0].remaining, "timer restarts")
	})

	t.Run("same message under another toast stacks", func(t *testing.T) {
		c := NewToastController(0)
		c.Push(deleteFailed)
		c.Push(saved)
		c.Push(deleteFailed)

		assert.Len(t, c.Toasts(), 3)
	})

	t.Run("oldest is dropped past the limit", func(t *testing.T) {
		c := NewToastController(0)
		for _, n := range []notify.Notification{deleted, notFound, saved, deleteFailed} {
			c.Push(n)
		}

		require.Len(t, c.Toasts(), maxToasts)
		assert.Equal(t, "Item not found.", c.Toasts()[0].notification.Message)
	})
}

func TestToastController_TickChain(t *testing.T) {
	c := NewToastController(time.Second)
	assert.False(t, c.StartTicking(), "nothing to expire")

	c.Push(saved)
	c.Push(notFound)
	require.True(t, c.StartTicking())
	assert.False(t, c.StartTicking(), "one chain at a time")

	assert.True(t, c.Tick(time.Second), "error toast outlives the success toast")
	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "Item not found.", c.Toasts()[0].notification.Message)

	assert.False(t, c.Tick(time.Second))
	assert.False(t, c.HasToasts())

	c.Push(deleted)
	assert.True(t, c.StartTicking(), "a new chain starts after the last one ended")
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController(0)
	c.Dismiss()
	assert.False(t, c.HasToasts())

	c.Push(deleted)
	c.Push(deleteFailed)
	c.Dismiss()

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "Item deleted.", c.Toasts()[0].notification.Message)
}
