package glyphatlas_test

import (
	"bytes"
	"context"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/text"
)

// blankFont has metrics but no glyphs at all.
type blankFont struct{}

func (blankFont) Name() string                 { return "blank" }
func (blankFont) FullName() string             { return "blank" }
func (blankFont) NumGlyphs() int               { return 1 }
func (blankFont) GlyphIndex(rune) text.GlyphID { return 0 }

func (blankFont) Kern(text.GlyphID, text.GlyphID, float32) float32 { return 0 }

func (blankFont) Metrics(scale float32) text.FontMetrics {
	return text.FontMetrics{Ascent: 0.8 * scale, Descent: -0.2 * scale}
}

func (blankFont) GlyphAdvance(text.GlyphID, float32) float32 { return 0 }

func (blankFont) Outline(text.GlyphID, float32) (text.Outline, bool) { return nil, false }

func (blankFont) Characters() iter.Seq2[text.GlyphID, rune] {
	return func(func(text.GlyphID, rune) bool) {}
}

// newBlankMultiFace builds a MultiFace with no replacement glyph,
// which logs a warning.
func newBlankMultiFace(t *testing.T) {
	t.Helper()
	a, err := atlas.New(atlas.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	face, err := text.NewFace(a, 1, "blank", blankFont{}, 16, text.DefaultFontTweak())
	if err != nil {
		t.Fatal(err)
	}
	text.NewMultiFace(face)
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := glyphatlas.Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger_RoutesSubpackageLogs(t *testing.T) {
	t.Cleanup(func() { glyphatlas.SetLogger(nil) })

	var buf bytes.Buffer
	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	newBlankMultiFace(t)

	out := buf.String()
	for _, want := range []string{"text: face created", "text: no replacement glyph", "level=WARN"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	t.Cleanup(func() { glyphatlas.SetLogger(nil) })

	var buf bytes.Buffer
	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	glyphatlas.SetLogger(nil)

	if glyphatlas.Logger() == nil {
		t.Fatal("SetLogger(nil) should set a nop logger, not nil")
	}

	newBlankMultiFace(t)
	if buf.Len() != 0 {
		t.Errorf("silenced logger still wrote:\n%s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	t.Cleanup(func() { glyphatlas.SetLogger(nil) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			glyphatlas.Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			glyphatlas.SetLogger(slog.New(slog.DiscardHandler))
			glyphatlas.SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := glyphatlas.Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
