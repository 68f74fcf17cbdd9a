package stores

import (
	"context"
	"testing"
	"time"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryItemStore(t *testing.T) {
	ctx := context.Background()

	t.Run("find seeded item", func(t *testing.T) {
		store := NewMemoryItemStore(0, newTestItem("abc"))

		got, err := store.FindByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "Oxford shirt", got.ProductName)
	})

	t.Run("find not found", func(t *testing.T) {
		store := NewMemoryItemStore(0)

		_, err := store.FindByID(ctx, "abc")
		assert.ErrorIs(t, err, closet.ErrNotFound)
	})

	t.Run("returned items are copies", func(t *testing.T) {
		store := NewMemoryItemStore(0, newTestItem("abc"))

		got, err := store.FindByID(ctx, "abc")
		require.NoError(t, err)
		got.Images[0] = "mutated.jpg"

		again, err := store.FindByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "front.jpg", again.Images[0])
	})

	t.Run("delete", func(t *testing.T) {
		store := NewMemoryItemStore(0, newTestItem("abc"))

		require.NoError(t, store.DeleteByID(ctx, "abc"))
		assert.ErrorIs(t, store.DeleteByID(ctx, "abc"), closet.ErrNotFound)
	})

	t.Run("list keeps seed order", func(t *testing.T) {
		store := NewMemoryItemStore(0, newTestItem("a"), newTestItem("b"), newTestItem("c"))

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "b", items[1].ID)
		assert.Equal(t, "c", items[2].ID)
	})

	t.Run("save keeps created_at on update", func(t *testing.T) {
		store := NewMemoryItemStore(0, newTestItem("abc"))
		before, err := store.FindByID(ctx, "abc")
		require.NoError(t, err)

		before.Brand = "Muji"
		require.NoError(t, store.Save(ctx, before))

		after, err := store.FindByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "Muji", after.Brand)
		assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	})

	t.Run("latency honours context", func(t *testing.T) {
		store := NewMemoryItemStore(time.Hour, newTestItem("abc"))

		cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := store.FindByID(cctx, "abc")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("latency delays result", func(t *testing.T) {
		store := NewMemoryItemStore(20*time.Millisecond, newTestItem("abc"))

		start := time.Now()
		require.NoError(t, store.DeleteByID(ctx, "abc"))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})
}
