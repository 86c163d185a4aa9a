// Package text resolves characters to glyphs and caches them in a shared
// texture atlas.
//
// The pipeline has three layers:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: one typeface at one pixel scale; rasterizes each glyph into
//     the atlas once and remembers it
//   - MultiFace: an ordered fallback chain of faces with a replacement
//     glyph for characters none of them has
//
// All sizes reported by Face and MultiFace are in points; the atlas is
// in texels. Pixels-per-point is fixed per face.
//
// # Example usage
//
//	a, _ := atlas.New(atlas.DefaultConfig())
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	face, err := source.NewFace(a, 2, 28, text.DefaultFontTweak())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	font := text.NewMultiFace(face, emojiFace)
//	width := font.Advance("Hello, GoGPU!")
//
// # Special characters
//
// Tabs advance by TabSize spaces. U+2009 THIN SPACE is a narrow space.
// Carriage returns and zero-width formatting characters (joiners,
// direction marks, U+FEFF) have zero width. Faces named after one of
// BuiltinFontNames never display a few private-use and unwanted symbols.
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	// Register a custom parser
//	text.RegisterParser("myparser", myCustomParser)
//
//	// Use the custom parser
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
