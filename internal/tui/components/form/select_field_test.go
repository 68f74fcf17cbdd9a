package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/closet/pkg/tuitest"
)

func TestSelectField(t *testing.T) {
	options := []string{"Tops", "Bottoms", "Outerwear"}

	t.Run("empty current selects none", func(t *testing.T) {
		f := NewSelectField("Category", options, "")
		assert.Equal(t, "Category", f.Label())
		assert.False(t, f.Focused())
		assert.Equal(t, "", f.Value())
		assert.Contains(t, tuitest.StripANSI(f.View()), "(none)")
	})

	t.Run("current value preselected", func(t *testing.T) {
		f := NewSelectField("Category", options, "Bottoms")
		assert.Equal(t, "Bottoms", f.Value())
	})

	t.Run("unknown current value kept", func(t *testing.T) {
		f := NewSelectField("Category", options, "Accessories")
		assert.Equal(t, "Accessories", f.Value())
	})

	t.Run("no options", func(t *testing.T) {
		f := NewSelectField("Category", nil, "")
		assert.Equal(t, "", f.Value())
		assert.Contains(t, f.View(), "Category")
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewSelectField("Category", options, "")
		f.Focus()
		assert.True(t, f.Focused())
		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewSelectField("Category", options, "")
		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "", field.Value())
	})

	t.Run("moves when focused", func(t *testing.T) {
		f := NewSelectField("Category", options, "")
		f.Focus()
		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "Tops", field.Value())
		assert.False(t, f.IsFiltering())
	})
}
