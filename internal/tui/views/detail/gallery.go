package detail

// Gallery is a circular cursor over an item's image references.
type Gallery struct {
	images []string
	cursor int
}

// NewGallery returns a gallery positioned on the first image.
func NewGallery(images []string) Gallery {
	return Gallery{images: images}
}

// Len returns the number of images.
func (g Gallery) Len() int {
	return len(g.images)
}

// Cursor returns the index of the visible image.
func (g Gallery) Cursor() int {
	return g.cursor
}

// Next advances to the next image, wrapping to the first. No-op with fewer
// than two images.
func (g *Gallery) Next() {
	if len(g.images) <= 1 {
		return
	}
	g.cursor = (g.cursor + 1) % len(g.images)
}

// Previous moves to the previous image, wrapping to the last. No-op with fewer
// than two images.
func (g *Gallery) Previous() {
	if len(g.images) <= 1 {
		return
	}
	g.cursor = (g.cursor - 1 + len(g.images)) % len(g.images)
}

// Visible returns the image under the cursor, or false when there are none.
func (g Gallery) Visible() (string, bool) {
	if len(g.images) == 0 {
		return "", false
	}
	return g.images[g.cursor], true
}

// ShowControls reports whether navigation controls should be rendered.
func (g Gallery) ShowControls() bool {
	return len(g.images) > 1
}

// Indicators returns one marker per image; only the cursor's marker is set.
func (g Gallery) Indicators() []bool {
	return Indicators(len(g.images), g.cursor)
}

// Indicators returns length markers with only index cursor set.
func Indicators(length, cursor int) []bool {
	out := make([]bool, length)
	if cursor >= 0 && cursor < length {
		out[cursor] = true
	}
	return out
}
