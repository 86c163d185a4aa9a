// Command glyphatlas builds a glyph atlas from a fallback chain of fonts
// and writes it as a PNG.
//
// Usage:
//
//	glyphatlas -font goregular -font NotoEmoji-Regular.ttf -size 14 -ppp 2 -out atlas.png
//	glyphatlas -font DejaVuSans -text "Grüße, 1 234 567" -chars
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/text"
)

// fontList collects repeated -font flags.
type fontList []string

func (l *fontList) String() string     { return strings.Join(*l, ",") }
func (l *fontList) Set(v string) error { *l = append(*l, v); return nil }

func main() {
	var fonts fontList
	flag.Var(&fonts, "font", "font to use: goregular, gomono, a file path or a system font name (repeatable, in fallback order)")
	var (
		size    = flag.Float64("size", 14, "font size in points")
		ppp     = flag.Float64("ppp", 1, "physical pixels per point")
		output  = flag.String("out", "atlas.png", "output PNG file (empty to skip)")
		sample  = flag.String("text", "", "text to preload and measure")
		chars   = flag.Bool("chars", false, "print the characters the fonts provide")
		limit   = flag.Int("limit", 64, "maximum rows printed by -chars")
		width   = flag.Int("width", 1024, "atlas width in texels")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(fonts) == 0 {
		fonts = fontList{"goregular"}
	}

	cfg := atlas.DefaultConfig()
	cfg.Width = *width
	a, err := atlas.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create atlas: %v", err)
	}

	faces := make([]*text.Face, 0, len(fonts))
	for _, name := range fonts {
		source, err := loadFont(name)
		if err != nil {
			log.Fatalf("Failed to load font %q: %v", name, err)
		}
		scale := float32(*size * *ppp)
		face, err := source.NewFace(a, float32(*ppp), scale, text.DefaultFontTweak())
		if err != nil {
			log.Fatalf("Failed to create face for %q: %v", name, err)
		}
		faces = append(faces, face)
	}

	font := text.NewMultiFace(faces...)
	font.PreloadCommonCharacters()
	font.PreloadCharacters(*sample)

	if err := printFaces(faces); err != nil {
		log.Fatal(err)
	}
	if *sample != "" {
		if err := printSample(font, *sample); err != nil {
			log.Fatal(err)
		}
	}
	if *chars {
		if err := printCharacters(font.Characters(), *limit); err != nil {
			log.Fatal(err)
		}
	}

	stats := a.Stats()
	fmt.Printf("Atlas: %dx%d, %d glyphs, %.1f%% filled, %.1f%% of capacity, %d rows free\n",
		stats.Width, stats.Height, stats.Allocations, stats.FillRatio*100,
		stats.Capacity*100, stats.RemainingRows)

	if *output == "" {
		return
	}
	if err := savePNG(a, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Atlas saved to %s\n", *output)
}

func savePNG(a *atlas.Atlas, path string) error {
	// #nosec G304 -- output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, a.Snapshot()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
