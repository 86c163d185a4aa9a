package text

import "github.com/gogpu/glyphatlas/guimath"

// GlyphID is the identifier of a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
// ID 0 is the font's "missing glyph" and is never allocated.
type GlyphID uint16

// UvRect locates a rasterized glyph in the atlas and on screen.
type UvRect struct {
	// Offset of the top-left corner relative to the pen position, in points.
	// Includes the face's vertical offset.
	Offset guimath.Vec2

	// Size of the rendered glyph in points. This is the footprint of the
	// rasterized image, not the row height.
	Size guimath.Vec2

	// Min is the top-left texel in the atlas.
	Min [2]uint16

	// Max is the bottom-right texel in the atlas, exclusive.
	Max [2]uint16
}

// IsNothing reports whether the rect covers no texels,
// as for whitespace or invisible characters.
func (r UvRect) IsNothing() bool {
	return r.Min == r.Max
}

// GlyphInfo is everything needed to lay out and draw one character.
// It never changes once computed.
type GlyphInfo struct {
	// ID is used for pair kerning only. It is not unique across fonts,
	// and 0 means "no glyph id".
	ID GlyphID

	// AdvanceWidth is the horizontal pen advance in points.
	// Kerning is not included.
	AdvanceWidth float32

	// UvRect is where the glyph was drawn in the atlas.
	UvRect UvRect
}
