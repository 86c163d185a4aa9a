package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyphatlas/text"
)

func printFaces(faces []*text.Face) error {
	data := [][]string{
		{"#", "Face", "Scale (px)", "Row height", "Ascent", "Glyphs"},
	}
	for i, f := range faces {
		data = append(data, []string{
			strconv.Itoa(i),
			f.Name(),
			strconv.Itoa(f.ScaleInPixels()),
			formatPoints(f.RowHeight()),
			formatPoints(f.Ascent()),
			strconv.Itoa(f.CacheStats().Len),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSample(font *text.MultiFace, s string) error {
	pterm.Printf("Text %q: width %s, all glyphs available: %v\n",
		s, formatPoints(font.Advance(s)), font.HasGlyphs(s))

	data := [][]string{
		{"Char", "Code", "Name", "Face", "Advance", "Texels"},
	}
	for _, r := range s {
		face, g := font.FaceAndGlyphInfo(r)
		faceName := "-"
		if face != nil {
			faceName = face.Name()
		}
		if !font.HasGlyph(r) {
			faceName += " (replacement)"
		}
		data = append(data, []string{
			printable(r),
			fmt.Sprintf("U+%04X", r),
			runenames.Name(r),
			faceName,
			formatPoints(g.AdvanceWidth),
			formatTexels(g.UvRect),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printCharacters(idx *text.CharacterIndex, limit int) error {
	pterm.Printf("%d characters available\n", idx.Len())

	data := [][]string{
		{"Char", "Code", "Name", "Faces"},
	}
	for r, faces := range idx.All() {
		if len(data) > limit {
			break
		}
		data = append(data, []string{
			printable(r),
			fmt.Sprintf("U+%04X", r),
			runenames.Name(r),
			fmt.Sprint(faces),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printable(r rune) string {
	if r < 0x20 || r == 0x7f {
		return strconv.QuoteRune(r)
	}
	return string(r)
}

func formatPoints(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32) + "pt"
}

func formatTexels(uv text.UvRect) string {
	if uv.IsNothing() {
		return "-"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", uv.Min[0], uv.Min[1], uv.Max[0], uv.Max[1])
}
