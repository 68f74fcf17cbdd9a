package detail

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("img-%d.jpg", i)
	}
	return out
}

func TestGallery_CycleProperty(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := range n {
			t.Run(fmt.Sprintf("n=%d start=%d", n, start), func(t *testing.T) {
				g := NewGallery(images(n))
				for range start {
					g.Next()
				}
				if n > 1 {
					assert.Equal(t, start, g.Cursor())
				}
				begin := g.Cursor()

				for range n {
					g.Next()
				}
				assert.Equal(t, begin, g.Cursor(), "next n times")

				for range n {
					g.Previous()
				}
				assert.Equal(t, begin, g.Cursor(), "previous n times")
			})
		}
	}
}

func TestGallery_NoOpBelowTwo(t *testing.T) {
	for _, n := range []int{0, 1} {
		g := NewGallery(images(n))
		g.Next()
		assert.Equal(t, 0, g.Cursor())
		g.Previous()
		assert.Equal(t, 0, g.Cursor())
		assert.False(t, g.ShowControls())
	}
}

func TestGallery_Scenario(t *testing.T) {
	g := NewGallery([]string{"a", "b", "c"})
	assert.Equal(t, 0, g.Cursor())

	g.Next()
	assert.Equal(t, 1, g.Cursor())
	g.Next()
	assert.Equal(t, 2, g.Cursor())
	g.Next()
	assert.Equal(t, 0, g.Cursor())

	g.Previous()
	assert.Equal(t, 2, g.Cursor(), "previous wraps to last")
}

func TestGallery_Visible(t *testing.T) {
	_, ok := NewGallery(nil).Visible()
	assert.False(t, ok)

	g := NewGallery([]string{"a", "b", "c"})
	for i := range 7 {
		ref, ok := g.Visible()
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b", "c"}[i%3], ref)
		g.Next()
	}
}

func TestGallery_Indicators(t *testing.T) {
	g := NewGallery(images(4))
	for range 9 {
		marks := g.Indicators()
		assert.Len(t, marks, 4)

		active := 0
		for i, on := range marks {
			if on {
				active++
				assert.Equal(t, g.Cursor(), i)
			}
		}
		assert.Equal(t, 1, active)
		g.Previous()
	}
}

func TestIndicators_Pure(t *testing.T) {
	assert.Equal(t, []bool{false, true, false}, Indicators(3, 1))
	assert.Equal(t, []bool{}, Indicators(0, 0))
	assert.Equal(t, []bool{false, false}, Indicators(2, 5))
}
