package styles

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	names := ThemeNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, DefaultTheme)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		p, ok := GetPalette(name)
		require.True(t, ok, name)
		assert.NotNil(t, p.Primary, name)
		assert.NotNil(t, p.Error, name)
	}

	_, ok := GetPalette("no-such-theme")
	assert.False(t, ok)
}

func TestThemes_DerivedShades(t *testing.T) {
	for _, name := range ThemeNames() {
		p, _ := GetPalette(name)
		bg, _ := colorful.MakeColor(p.Background)
		fg, _ := colorful.MakeColor(p.Foreground)
		surface, _ := colorful.MakeColor(p.Surface)
		muted, _ := colorful.MakeColor(p.Muted)

		assert.Less(t, bg.DistanceLab(surface), bg.DistanceLab(muted), "%s: surface sits closer to the background than muted", name)
		assert.Less(t, bg.DistanceLab(muted), bg.DistanceLab(fg), "%s: muted stays below the foreground", name)
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("linen")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p, CurrentPalette)
}

func TestColorForString(t *testing.T) {
	assert.Equal(t, ColorForString("casual"), ColorForString("casual"))
	assert.Contains(t, ColorPool, ColorForString("workwear"))
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, *colorHexPtr(ColorPrimary), *cfg.H1.Color)
	assert.Nil(t, colorHexPtr(nil))
}
