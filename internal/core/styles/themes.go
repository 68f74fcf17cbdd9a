package styles

import (
	"fmt"
	"image/color"
	"maps"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "denim"

// swatch is the hand-picked part of a theme, named after the cloth it is
// drawn from. Muted and Surface are mixed from the background and foreground
// so every theme keeps the same contrast steps.
type swatch struct {
	primary, secondary string
	fg, bg             string
	success, warning   string
	err                string
}

var swatches = map[string]swatch{
	"denim": {
		primary: "#6f93d6", secondary: "#a8c1e8",
		fg: "#dfe5ef", bg: "#18202e",
		success: "#8cc084", warning: "#e2b86b", err: "#e07a70",
	},
	"charcoal": {
		primary: "#c9a46b", secondary: "#9fb4a6",
		fg: "#e3e0da", bg: "#1e1e1e",
		success: "#98b77d", warning: "#d9a75c", err: "#d46a5f",
	},
	"tweed": {
		primary: "#b58a5a", secondary: "#8fa876",
		fg: "#ebdfc8", bg: "#2a241d",
		success: "#a3b86c", warning: "#e0b55a", err: "#c8574a",
	},
	"wool": {
		primary: "#9b8fc7", secondary: "#c79bb5",
		fg: "#ece8f2", bg: "#221f2b",
		success: "#93c49a", warning: "#e6c27a", err: "#e27f8a",
	},
	"linen": {
		primary: "#3f6fb0", secondary: "#7a5c9e",
		fg: "#2e2a24", bg: "#f4efe6",
		success: "#4f8a3c", warning: "#a8741a", err: "#b23a32",
	},
}

// themes holds the built-in palettes, built once from swatches.
var themes = buildThemes(swatches)

func buildThemes(in map[string]swatch) map[string]Palette {
	out := make(map[string]Palette, len(in))
	for name, s := range in {
		out[name] = s.palette(name)
	}
	return out
}

func (s swatch) palette(name string) Palette {
	fg, bg := mustHex(name, s.fg), mustHex(name, s.bg)
	return Palette{
		Primary:    mustHex(name, s.primary),
		Secondary:  mustHex(name, s.secondary),
		Foreground: fg,
		Muted:      bg.BlendLab(fg, 0.45).Clamped(),
		Background: bg,
		Surface:    bg.BlendLab(fg, 0.15).Clamped(),
		Success:    mustHex(name, s.success),
		Warning:    mustHex(name, s.warning),
		Error:      mustHex(name, s.err),
	}
}

func mustHex(theme, hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("theme %s: %v", theme, err))
	}
	return c
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
