package text

import (
	"fmt"
	"iter"
	"sync"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/glyphatlas/guimath"
)

// Face is one typeface at one pixel scale.
//
// A Face resolves characters to glyphs, rasterizes each glyph into the
// shared atlas the first time it is asked for, and remembers the result.
// All sizes it reports are in points.
//
// Face is safe for concurrent use. It is typically shared by several
// MultiFace values (e.g. as a fallback for many primary fonts).
type Face struct {
	name  string
	font  ParsedFont
	atlas *atlas.Atlas

	pixelsPerPoint float32

	// scaleInPixels is rounded to whole pixels for even kerning.
	scaleInPixels int

	heightInPoints  float32
	yOffsetInPoints float32
	ascent          float32

	builtin bool

	glyphs *cache.Memo[rune, GlyphInfo]

	// allocMu makes rasterization of a character happen at most once.
	allocMu sync.Mutex
}

// NewFace creates a face for font at scaleInPixels, drawing into a.
//
// name identifies the face in character listings; faces named after one
// of BuiltinFontNames additionally hide a few unwanted characters.
func NewFace(a *atlas.Atlas, pixelsPerPoint float32, name string, font ParsedFont, scaleInPixels float32, tweak FontTweak) (*Face, error) {
	switch {
	case a == nil:
		return nil, ErrNilAtlas
	case font == nil:
		return nil, ErrNilFont
	case !(scaleInPixels > 0):
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScale, scaleInPixels)
	case !(pixelsPerPoint > 0):
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPixelsPerPoint, pixelsPerPoint)
	case tweak.Scale < 0:
		return nil, fmt.Errorf("%w: tweak scale %v", ErrInvalidScale, tweak.Scale)
	}
	if tweak.Scale == 0 {
		tweak.Scale = 1
	}

	m := font.Metrics(scaleInPixels)
	ascent := guimath.RoundUI(m.Ascent / pixelsPerPoint)
	descent := guimath.RoundUI(m.Descent / pixelsPerPoint)
	lineGap := guimath.RoundUI(m.LineGap / pixelsPerPoint)

	scaleInPixels *= tweak.Scale
	scaleInPoints := scaleInPixels / pixelsPerPoint

	baselineOffset := guimath.RoundUI(scaleInPoints * tweak.BaselineOffsetFactor)
	yOffsetPoints := guimath.RoundUI(scaleInPoints*tweak.YOffsetFactor + tweak.YOffset)

	// Keep a scaled face centered in its row.
	yOffsetPoints -= (1 - tweak.Scale) * 0.5 * (ascent + descent)

	f := &Face{
		name:            name,
		font:            font,
		atlas:           a,
		pixelsPerPoint:  pixelsPerPoint,
		scaleInPixels:   int(guimath.Round(scaleInPixels)),
		heightInPoints:  ascent - descent + lineGap,
		yOffsetInPoints: guimath.RoundToPixel(yOffsetPoints, pixelsPerPoint),
		ascent:          ascent + baselineOffset,
		builtin:         isBuiltinFont(name),
		glyphs:          cache.NewMemo[rune, GlyphInfo](cache.RuneHasher),
	}
	if f.scaleInPixels < 1 {
		return nil, fmt.Errorf("%w: %v rounds to zero pixels", ErrInvalidScale, scaleInPixels)
	}

	glyphatlas.Logger().Debug("text: face created",
		"name", name,
		"scale_px", f.scaleInPixels,
		"row_height", f.heightInPoints,
		"ppp", pixelsPerPoint)

	return f, nil
}

// Name returns the name the face was created with.
func (f *Face) Name() string {
	return f.name
}

// RowHeight returns the height of one row of text in points,
// rounded to the GUI grid.
func (f *Face) RowHeight() float32 {
	return f.heightInPoints
}

// PixelsPerPoint returns the ratio the face was created for.
func (f *Face) PixelsPerPoint() float32 {
	return f.pixelsPerPoint
}

// Ascent returns the distance from the top of the row to the baseline,
// in points.
func (f *Face) Ascent() float32 {
	return f.ascent
}

// ScaleInPixels returns the integer pixel scale glyphs are rasterized at.
func (f *Face) ScaleInPixels() int {
	return f.scaleInPixels
}

// CacheStats returns statistics of the face's glyph cache.
func (f *Face) CacheStats() cache.Stats {
	return f.glyphs.Stats()
}

// Characters returns every character the font maps, in no particular
// order. Characters hidden by a built-in font are left out.
func (f *Face) Characters() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range f.font.Characters() {
			if f.ignoresChar(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// PairKerning returns the kerning between two glyphs of this face,
// in points.
func (f *Face) PairKerning(left, right GlyphID) float32 {
	return f.font.Kern(left, right, float32(f.scaleInPixels)) / f.pixelsPerPoint
}

// GlyphInfo returns the glyph for r, rasterizing it into the atlas on
// first use. ok is false when the face cannot display r.
//
// Tabs are as wide as TabSize spaces. Thin spaces (U+2009) are narrow
// spaces. Invisible formatting characters have zero width and no image.
func (f *Face) GlyphInfo(r rune) (GlyphInfo, bool) {
	if g, ok := f.glyphs.Get(r); ok {
		return g, true
	}

	if f.ignoresChar(r) {
		return GlyphInfo{}, false
	}

	switch r {
	case '\t':
		if space, ok := f.GlyphInfo(' '); ok {
			space.AdvanceWidth *= TabSize
			return f.remember(r, space), true
		}
	case thinSpace:
		if space, ok := f.GlyphInfo(' '); ok {
			space.AdvanceWidth = min(f.heightInPoints/6, space.AdvanceWidth*0.5)
			return f.remember(r, space), true
		}
	}

	if invisibleChar(r) {
		return f.remember(r, GlyphInfo{}), true
	}

	id := f.font.GlyphIndex(r)
	if id == 0 {
		return GlyphInfo{}, false
	}

	f.allocMu.Lock()
	defer f.allocMu.Unlock()

	// Another goroutine may have drawn it while we waited.
	if g, ok := f.glyphs.Get(r); ok {
		return g, true
	}
	return f.remember(r, f.allocateGlyph(r, id)), true
}

// remember memoizes g for r and returns the memoized value.
func (f *Face) remember(r rune, g GlyphInfo) GlyphInfo {
	g, _ = f.glyphs.Store(r, g)
	return g
}

func (f *Face) ignoresChar(r rune) bool {
	return f.builtin && ignoredChar(r)
}

// allocateGlyph rasterizes glyph id into the atlas.
// If the atlas is full the glyph keeps its advance but gets no image.
func (f *Face) allocateGlyph(r rune, id GlyphID) GlyphInfo {
	if id == 0 {
		panic("text: cannot allocate glyph for id 0")
	}

	scale := float32(f.scaleInPixels)
	g := GlyphInfo{
		ID:           id,
		AdvanceWidth: f.font.GlyphAdvance(id, scale) / f.pixelsPerPoint,
	}

	outline, ok := f.font.Outline(id, scale)
	if !ok {
		return g
	}
	bb := outline.Bounds()
	w, h := bb.Dx(), bb.Dy()
	if w <= 0 || h <= 0 {
		return g
	}

	pos, err := f.atlas.Allocate(w, h, func(v atlas.View) {
		outline.Draw(v.SetCoverage)
	})
	if err != nil {
		glyphatlas.Logger().Warn("text: glyph not added to atlas",
			"face", f.name,
			"char", string(r),
			"codepoint", fmt.Sprintf("%U", r),
			"size", fmt.Sprintf("%dx%d", w, h),
			"err", err)
		return g
	}

	ppp := f.pixelsPerPoint
	offset := guimath.V2(float32(bb.Min.X), float32(bb.Min.Y)).Div(ppp)
	g.UvRect = UvRect{
		Offset: offset.Add(guimath.YAxis.Mul(f.yOffsetInPoints)),
		Size:   guimath.V2(float32(w), float32(h)).Div(ppp),
		Min:    [2]uint16{uint16(pos.X), uint16(pos.Y)},         //nolint:gosec // atlas sides are at most 16384
		Max:    [2]uint16{uint16(pos.X + w), uint16(pos.Y + h)}, //nolint:gosec // atlas sides are at most 16384
	}
	return g
}
