package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas/text"
)

// builtinFonts are always available without touching the file system.
var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// loadFont resolves name to a font source. name is a built-in font, a
// path to a font file, or a font name looked up in the system font
// directories. File-based faces are named after the file, so that names
// like "Hack" keep their built-in treatment.
func loadFont(name string) (*text.FontSource, error) {
	if data, ok := builtinFonts[name]; ok {
		return text.NewFontSource(data, text.WithName(name))
	}

	path := name
	if _, err := os.Stat(path); err != nil {
		found, findErr := findfont.Find(name)
		if findErr != nil {
			return nil, findErr
		}
		path = found
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return text.NewFontSourceFromFile(path, text.WithName(base))
}
