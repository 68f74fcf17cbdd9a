package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/closet/internal/core/notify"
	"github.com/colonyops/closet/internal/data/db"
)

func newNotifyStore(t *testing.T) *NotifyStore {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewNotifyStore(database)
}

// closetHistory is what a session of deleting, editing and a missing item
// leaves behind, oldest first.
var closetHistory = []notify.Notification{
	{Level: notify.LevelSuccess, Message: "Item deleted."},
	{Level: notify.LevelError, Message: "Item not found."},
	{Level: notify.LevelError, Message: "Failed to delete item."},
	{Level: notify.LevelSuccess, Message: "Item saved."},
}

func saveHistory(t *testing.T, s *NotifyStore, history []notify.Notification) {
	t.Helper()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, n := range history {
		n.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		id, err := s.Save(context.Background(), n)
		require.NoError(t, err)
		require.Positive(t, id)
	}
}

func TestNotifyStore_History(t *testing.T) {
	ctx := context.Background()
	s := newNotifyStore(t)

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	saveHistory(t, s, closetHistory)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(closetHistory))

	for i, n := range got {
		want := closetHistory[len(closetHistory)-1-i]
		assert.Equal(t, want.Level, n.Level, "row %d", i)
		assert.Equal(t, want.Message, n.Message, "row %d", i)
	}
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(closetHistory)), count)

	require.NoError(t, s.Clear(ctx))
	count, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotifyStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("prunes beyond the limit", func(t *testing.T) {
		s := newNotifyStore(t).WithLimit(2)
		saveHistory(t, s, closetHistory)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Item saved.", got[0].Message)
		assert.Equal(t, "Failed to delete item.", got[1].Message)
	})

	t.Run("zero limit keeps everything", func(t *testing.T) {
		s := newNotifyStore(t).WithLimit(0)
		saveHistory(t, s, closetHistory)

		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(len(closetHistory)), count)
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		s := newNotifyStore(t)
		_, err := s.Save(ctx, notify.Notification{Level: "fatal", Message: "Item deleted."})
		require.ErrorContains(t, err, `unknown level "fatal"`)

		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("missing timestamp is stamped", func(t *testing.T) {
		s := newNotifyStore(t)
		before := time.Now()
		_, err := s.Save(ctx, notify.Notification{Level: notify.LevelSuccess, Message: "Item saved."})
		require.NoError(t, err)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.False(t, got[0].CreatedAt.Before(before.Truncate(time.Microsecond)))
	})
}
