package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/closet/internal/tui/route"
)

func TestRouter(t *testing.T) {
	t.Run("starts at list", func(t *testing.T) {
		r := NewRouter("")
		assert.Equal(t, route.List, r.Current())
		assert.Equal(t, 1, r.Depth())
		assert.False(t, r.TakeChanged())
	})

	t.Run("deep link keeps list underneath", func(t *testing.T) {
		r := NewRouter(route.Detail("abc"))
		assert.Equal(t, "/closet/abc", r.Current())

		r.GoBack()
		assert.Equal(t, route.List, r.Current())
		assert.True(t, r.TakeChanged())
		assert.False(t, r.TakeChanged(), "flag clears once taken")
	})

	t.Run("go back at root is a no-op", func(t *testing.T) {
		r := NewRouter(route.List)
		r.GoBack()
		assert.Equal(t, route.List, r.Current())
		assert.False(t, r.TakeChanged())
	})

	t.Run("go to list resets the stack", func(t *testing.T) {
		r := NewRouter("")
		r.GoTo(route.Detail("abc"))
		r.GoTo(route.Edit("abc"))
		assert.Equal(t, 3, r.Depth())

		r.GoTo(route.List)
		assert.Equal(t, 1, r.Depth())
		assert.Equal(t, route.List, r.Current())
		assert.True(t, r.TakeChanged())
	})
}
