package text

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"iter"
	"math"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype
// for glyph data and github.com/go-text/typesetting for the character map.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse character map: %w", err)
	}

	// Metrics at ppem == unitsPerEm are in font units.
	var buf sfnt.Buffer
	upem := float32(f.UnitsPerEm())
	m, err := f.Metrics(&buf, fixed.I(int(f.UnitsPerEm())), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font metrics: %w", err)
	}
	ascent := fixedToFloat32(m.Ascent)
	descent := fixedToFloat32(m.Descent)
	if ascent+descent <= 0 {
		return nil, fmt.Errorf("text: font has no vertical extent (ascent %v, descent %v)", ascent, descent)
	}

	return &ximageParsedFont{
		font:    f,
		cmap:    face.Cmap,
		upem:    upem,
		ascent:  ascent,
		descent: -descent,
		lineGap: fixedToFloat32(m.Height) - ascent - descent,
	}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer, so each method allocates one on the stack.
type ximageParsedFont struct {
	font *opentype.Font
	cmap gotext.Cmap

	// Unscaled metrics in font units. descent is negative.
	upem    float32
	ascent  float32
	descent float32
	lineGap float32
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// unitScale returns the factor from font units to pixels.
func (f *ximageParsedFont) unitScale(scale float32) float32 {
	return scale / (f.ascent - f.descent)
}

// ppem converts a scale to the pixels-per-em size sfnt expects.
func (f *ximageParsedFont) ppem(scale float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(f.unitScale(scale) * f.upem * 64)))
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(scale float32) FontMetrics {
	k := f.unitScale(scale)
	return FontMetrics{
		Ascent:  f.ascent * k,
		Descent: f.descent * k,
		LineGap: f.lineGap * k,
	}
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(id GlyphID, scale float32) float32 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(id), f.ppem(scale), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat32(advance)
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(left, right GlyphID, scale float32) float32 {
	var buf sfnt.Buffer
	kern, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), f.ppem(scale), font.HintingNone)
	if err != nil {
		// sfnt.ErrNotFound: the font has no kerning data for this pair.
		return 0
	}
	return fixedToFloat32(kern)
}

// Outline implements ParsedFont.Outline.
// The glyph is rasterized here, so that Draw only copies coverage.
func (f *ximageParsedFont) Outline(id GlyphID, scale float32) (Outline, bool) {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(id), f.ppem(scale), nil)
	if err != nil || len(segments) == 0 {
		return nil, false
	}

	b := segments.Bounds()
	bounds := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	return &maskOutline{
		bounds: bounds,
		mask:   rasterize(segments, bounds),
	}, true
}

// Characters implements ParsedFont.Characters.
func (f *ximageParsedFont) Characters() iter.Seq2[GlyphID, rune] {
	return func(yield func(GlyphID, rune) bool) {
		it := f.cmap.Iter()
		for it.Next() {
			r, gid := it.Char()
			if gid == 0 || gid > math.MaxUint16 {
				continue
			}
			if !yield(GlyphID(gid), r) {
				return
			}
		}
	}
}

// maskOutline is a glyph already rasterized to a coverage mask.
type maskOutline struct {
	bounds image.Rectangle
	mask   *image.Alpha
}

// Bounds implements Outline.Bounds.
func (o *maskOutline) Bounds() image.Rectangle {
	return o.bounds
}

// Draw implements Outline.Draw.
func (o *maskOutline) Draw(fn func(x, y int, coverage float32)) {
	if o.mask == nil {
		return
	}
	w, h := o.mask.Rect.Dx(), o.mask.Rect.Dy()
	for y := range h {
		row := o.mask.Pix[y*o.mask.Stride : y*o.mask.Stride+w]
		for x, a := range row {
			if a > 0 {
				fn(x, y, float32(a)/255)
			}
		}
	}
}

// rasterize fills the segments into a mask covering bounds.
// Returns nil for an empty box.
func rasterize(segments sfnt.Segments, bounds image.Rectangle) *image.Alpha {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	// Shift glyph space so the bounding box starts at the rasterizer origin.
	biasX := -fixed.I(bounds.Min.X)
	biasY := -fixed.I(bounds.Min.Y)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+biasX) / 64, float32(p.Y+biasY) / 64
	}

	rast := vector.NewRasterizer(w, h)
	rast.DrawOp = draw.Src
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			rast.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			rast.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x3, y3 := pt(seg.Args[2])
			rast.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
