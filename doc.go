// Package glyphatlas resolves Unicode characters to glyphs, rasterizes each
// glyph once and packs it into a shared texture atlas.
//
// # Overview
//
// glyphatlas is built for immediate-mode GUI rendering: the same characters
// are measured and drawn every frame, so every lookup after the first must
// hit a cache and return the exact same texture coordinates.
//
// The work is split across sub-packages:
//
//   - atlas: the shared texture atlas (packing, growth, GPU upload)
//   - text: faces (one typeface at one pixel scale) and multi-faces
//     (an ordered fallback chain of faces)
//   - guimath: points/pixels rounding helpers
//   - cache: the append-only memo table used by faces
//
// # Quick Start
//
//	a, err := atlas.New(atlas.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	face, err := text.NewFace(a, 2, "Go-Regular", source.Parsed(), 28, text.DefaultFontTweak())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	font := text.NewMultiFace(face)
//	font.PreloadCommonCharacters()
//
//	w := font.GlyphWidth('A') // points
//	uv := font.UvRect('A')    // texels in the atlas
//
// # Logging
//
// The library is silent by default. Use [SetLogger] to route diagnostics
// (atlas growth, missing replacement glyphs) to a [log/slog] logger.
package glyphatlas
