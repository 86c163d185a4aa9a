package text

import (
	"sync"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/guimath"
)

// faceGlyph is a glyph together with the index of the face that drew it.
type faceGlyph struct {
	index int
	glyph GlyphInfo
}

// MultiFace combines multiple faces with fallback.
// Each character is taken from the first face that has a glyph for it;
// characters no face has are shown as a replacement glyph.
//
// Row height and pixels-per-point come from the first face. A MultiFace
// is never modified after creation: build a new one when fonts change.
//
// MultiFace is safe for concurrent use.
type MultiFace struct {
	faces []*Face

	pixelsPerPoint float32
	rowHeight      float32

	mu          sync.Mutex
	glyphs      map[rune]faceGlyph
	replacement faceGlyph
	characters  *CharacterIndex
}

// NewMultiFace creates a MultiFace trying faces in order.
//
// With no faces every query returns zero values. Otherwise the replacement
// glyph is resolved right away: '◻' if any face has it, else '?'.
func NewMultiFace(faces ...*Face) *MultiFace {
	m := &MultiFace{
		faces:          faces,
		pixelsPerPoint: 1,
		glyphs:         make(map[rune]faceGlyph),
	}
	if len(faces) == 0 {
		return m
	}

	m.pixelsPerPoint = faces[0].PixelsPerPoint()
	m.rowHeight = faces[0].RowHeight()

	m.mu.Lock()
	defer m.mu.Unlock()

	if fg, ok := m.lookupFaces(primaryReplacementChar); ok {
		m.replacement = fg
	} else if fg, ok := m.lookupFaces(fallbackReplacementChar); ok {
		m.replacement = fg
	} else {
		glyphatlas.Logger().Warn("text: no replacement glyph, missing characters will be blank",
			"primary", string(primaryReplacementChar),
			"fallback", string(fallbackReplacementChar),
			"faces", len(faces))
	}
	return m
}

// Faces returns the faces in fallback order.
func (m *MultiFace) Faces() []*Face {
	return m.faces
}

// PixelsPerPoint returns the ratio of the first face, or 1.
func (m *MultiFace) PixelsPerPoint() float32 {
	return m.pixelsPerPoint
}

// RowHeight returns the height of one row of text in points,
// rounded to the GUI grid.
func (m *MultiFace) RowHeight() float32 {
	return m.rowHeight
}

// RoundToPixel rounds a point value to the closest physical pixel.
func (m *MultiFace) RoundToPixel(points float32) float32 {
	return guimath.RoundToPixel(points, m.pixelsPerPoint)
}

// Ascent returns the ascent of the first face, or the row height when
// there are no faces.
func (m *MultiFace) Ascent() float32 {
	if len(m.faces) == 0 {
		return m.rowHeight
	}
	return m.faces[0].Ascent()
}

// GlyphWidth returns the advance of r in points.
func (m *MultiFace) GlyphWidth(r rune) float32 {
	return m.glyphInfo(r).glyph.AdvanceWidth
}

// UvRect returns where r was drawn in the atlas. It does not resolve r:
// characters that were never measured, drawn or preloaded return the
// zero UvRect.
func (m *MultiFace) UvRect(r rune) UvRect {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.glyphs[r].glyph.UvRect
}

// HasGlyph reports whether any face can display r.
//
// Characters that resolve to exactly the replacement glyph count as
// missing, so HasGlyph is false for the replacement character itself.
func (m *MultiFace) HasGlyph(r rune) bool {
	return m.glyphInfo(r) != m.replacementGlyph()
}

// HasGlyphs reports whether every character of s can be displayed.
func (m *MultiFace) HasGlyphs(s string) bool {
	for _, r := range s {
		if !m.HasGlyph(r) {
			return false
		}
	}
	return true
}

// PreloadCharacters resolves and rasterizes every character of s.
func (m *MultiFace) PreloadCharacters(s string) {
	for _, r := range s {
		m.glyphInfo(r)
	}
}

// PreloadCommonCharacters resolves printable ASCII, '°' and
// PasswordReplacementChar.
func (m *MultiFace) PreloadCommonCharacters() {
	const firstASCII, lastASCII = 0x20, 0x7e
	for r := rune(firstASCII); r <= lastASCII; r++ {
		m.glyphInfo(r)
	}
	m.glyphInfo('°')
	m.glyphInfo(PasswordReplacementChar)
}

// Characters returns every character the faces provide and which faces
// provide it. The index is built on first call and then reused.
func (m *MultiFace) Characters() *CharacterIndex {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.characters == nil {
		m.characters = newCharacterIndex(m.faces)
	}
	return m.characters
}

// FaceAndGlyphInfo returns the glyph for r and the face that provides
// it. face is nil when the MultiFace has no faces.
func (m *MultiFace) FaceAndGlyphInfo(r rune) (face *Face, g GlyphInfo) {
	if len(m.faces) == 0 {
		return nil, m.replacementGlyph().glyph
	}
	fg := m.glyphInfo(r)
	return m.faces[fg.index], fg.glyph
}

// Advance returns the width of s in points: the sum of the advances plus
// pair kerning between neighbors drawn by the same face.
// Newlines are not treated specially.
func (m *MultiFace) Advance(s string) float32 {
	var (
		width float32
		last  *Face
		prev  GlyphID
	)
	for _, r := range s {
		face, g := m.FaceAndGlyphInfo(r)
		if face != nil && face == last && prev != 0 && g.ID != 0 {
			width += face.PairKerning(prev, g.ID)
		}
		width += g.AdvanceWidth
		last, prev = face, g.ID
	}
	return width
}

func (m *MultiFace) replacementGlyph() faceGlyph {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.replacement
}

// glyphInfo resolves r through the cache, then the faces, then the
// replacement glyph. The result is cached either way.
func (m *MultiFace) glyphInfo(r rune) faceGlyph {
	m.mu.Lock()
	defer m.mu.Unlock()

	if fg, ok := m.glyphs[r]; ok {
		return fg
	}
	fg, ok := m.lookupFaces(r)
	if !ok {
		fg = m.replacement
		m.glyphs[r] = fg
	}
	return fg
}

// lookupFaces asks each face in order and caches the first hit.
// Must be called with m.mu held.
func (m *MultiFace) lookupFaces(r rune) (faceGlyph, bool) {
	for i, face := range m.faces {
		if g, ok := face.GlyphInfo(r); ok {
			fg := faceGlyph{index: i, glyph: g}
			m.glyphs[r] = fg
			return fg, true
		}
	}
	return faceGlyph{}, false
}
