package text

import (
	"image"
	"iter"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
//
// Every size-dependent method takes a scale: the pixel height of the
// font's ascent-to-descent span, not the em size. Results are in pixels.
//
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the font has no glyph for r.
	GlyphIndex(r rune) GlyphID

	// Metrics returns the font metrics at the given scale.
	Metrics(scale float32) FontMetrics

	// GlyphAdvance returns the horizontal advance of a glyph.
	GlyphAdvance(id GlyphID, scale float32) float32

	// Kern returns the pair kerning adjustment between two glyphs,
	// or 0 when the font has none.
	Kern(left, right GlyphID, scale float32) float32

	// Outline returns the outline of a glyph positioned at the origin.
	// ok is false when the glyph has no outline (e.g. a space).
	Outline(id GlyphID, scale float32) (o Outline, ok bool)

	// Characters enumerates every (glyph, rune) pair in the character map.
	// The order is unspecified.
	Characters() iter.Seq2[GlyphID, rune]
}

// Outline is a glyph outline ready to be rasterized.
type Outline interface {
	// Bounds returns the pixel bounding box relative to the pen position.
	// Y grows downward, so Min.Y is negative for glyphs above the baseline.
	Bounds() image.Rectangle

	// Draw calls fn for every pixel of the bounding box with non-zero
	// coverage. x and y are relative to Bounds().Min.
	Draw(fn func(x, y int, coverage float32))
}

// FontMetrics holds font-level metrics at a specific scale.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float32

	// LineGap is the recommended line gap between lines.
	LineGap float32
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float32 {
	return m.Ascent - m.Descent + m.LineGap
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
