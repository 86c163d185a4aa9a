package text

// FontTweak adjusts how a face is scaled and positioned.
// Use it when mixing fonts whose metrics do not line up.
type FontTweak struct {
	// Scale multiplies the requested size. 1 (or 0) leaves it unchanged.
	// A scaled face is re-centered vertically within its row.
	Scale float32

	// YOffsetFactor shifts glyphs down by this fraction of the scale.
	YOffsetFactor float32

	// YOffset shifts glyphs down by this many points.
	YOffset float32

	// BaselineOffsetFactor moves the reported baseline by this fraction
	// of the scale.
	BaselineOffsetFactor float32
}

// DefaultFontTweak returns a tweak that changes nothing.
func DefaultFontTweak() FontTweak {
	return FontTweak{Scale: 1}
}
