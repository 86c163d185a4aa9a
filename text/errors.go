package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilAtlas is returned when a face is created without an atlas.
	ErrNilAtlas = errors.New("text: atlas is nil")

	// ErrNilFont is returned when a face is created without a parsed font.
	ErrNilFont = errors.New("text: font is nil")

	// ErrInvalidScale is returned when the pixel scale of a face is not positive.
	ErrInvalidScale = errors.New("text: scale must be positive")

	// ErrInvalidPixelsPerPoint is returned when pixels-per-point is not positive.
	ErrInvalidPixelsPerPoint = errors.New("text: pixels per point must be positive")
)
