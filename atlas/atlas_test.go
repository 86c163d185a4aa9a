package atlas

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
)

func newTestAtlas(t *testing.T, cfg Config) *Atlas {
	t.Helper()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return a
}

func smallConfig() Config {
	return Config{
		Width:             64,
		InitialHeight:     16,
		MaxHeight:         128,
		Padding:           0,
		AlphaFromCoverage: Linear,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		field   string
		wantErr bool
	}{
		{"default", func(c *Config) {}, "", false},
		{"width too small", func(c *Config) { c.Width = 32 }, "Width", true},
		{"width too large", func(c *Config) { c.Width = 1 << 16 }, "Width", true},
		{"zero initial height", func(c *Config) { c.InitialHeight = 0 }, "InitialHeight", true},
		{"max below initial", func(c *Config) { c.MaxHeight = 32 }, "MaxHeight", true},
		{"max height overflows u16", func(c *Config) { c.MaxHeight = 65536 }, "MaxHeight", true},
		{"negative padding", func(c *Config) { c.Padding = -1 }, "Padding", true},
		{"huge padding", func(c *Config) { c.Padding = 9 }, "Padding", true},
		{"bad gamma", func(c *Config) { c.AlphaFromCoverage = Gamma(0) }, "AlphaFromCoverage", true},
		{"good gamma", func(c *Config) { c.AlphaFromCoverage = Gamma(0.5) }, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if a, err := New(cfg); err == nil || a != nil {
		t.Errorf("New() = (%v, %v), want error", a, err)
	}
}

func TestNew_WhiteTexel(t *testing.T) {
	a := newTestAtlas(t, DefaultConfig())

	white := a.WhiteUV()
	if white != image.Rect(0, 0, 1, 1) {
		t.Errorf("WhiteUV() = %v, want (0,0)-(1,1)", white)
	}

	img := a.Snapshot()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white texel = %v, want opaque white", got)
	}
	if size := a.Size(); size != image.Pt(1024, 64) {
		t.Errorf("Size() = %v, want 1024x64", size)
	}
}

func TestAllocate_WritesCoverage(t *testing.T) {
	a := newTestAtlas(t, smallConfig())

	pos, err := a.Allocate(4, 3, func(v View) {
		if v.Size() != image.Pt(4, 3) {
			t.Errorf("view size = %v, want 4x3", v.Size())
		}
		v.SetCoverage(0, 0, 1)
		v.SetCoverage(1, 0, 0.5)
		v.SetCoverage(2, 0, 0) // untouched
		v.SetCoverage(10, 10, 1)
		v.Set(3, 2, color.RGBA{1, 2, 3, 4})
	})
	if err != nil {
		t.Fatalf("Allocate() = %v", err)
	}

	region := image.Rectangle{Min: pos, Max: pos.Add(image.Pt(4, 3))}
	if region.Overlaps(a.WhiteUV()) {
		t.Fatalf("region %v overlaps the white texel", region)
	}

	img := a.Snapshot()
	if got := img.RGBAAt(pos.X, pos.Y).A; got != 255 {
		t.Errorf("full coverage alpha = %d, want 255", got)
	}
	if got := img.RGBAAt(pos.X+1, pos.Y).A; got != 128 {
		t.Errorf("half coverage alpha = %d, want 128", got)
	}
	if got := img.RGBAAt(pos.X+2, pos.Y).A; got != 0 {
		t.Errorf("zero coverage alpha = %d, want 0", got)
	}
	if got := img.RGBAAt(pos.X+3, pos.Y+2); got != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("Set pixel = %v", got)
	}
}

func TestAllocate_InvalidSize(t *testing.T) {
	a := newTestAtlas(t, smallConfig())

	_, err := a.Allocate(0, 5, nil)
	if !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("Allocate(0, 5) = %v, want ErrInvalidRegion", err)
	}
	if a.Stats().Allocations != 0 {
		t.Error("failed allocation was counted")
	}
}

func TestAllocate_GrowsAndFills(t *testing.T) {
	a := newTestAtlas(t, smallConfig())

	pos, err := a.Allocate(64, 40, nil)
	if err != nil {
		t.Fatalf("Allocate() = %v", err)
	}
	if pos.Y+40 > a.Size().Y {
		t.Fatalf("region bottom %d outside atlas height %d", pos.Y+40, a.Size().Y)
	}
	if got := a.Size(); got != image.Pt(64, 64) {
		t.Errorf("Size() after growth = %v, want 64x64", got)
	}

	// The white texel must survive the copy into the grown image.
	if got := a.Snapshot().RGBAAt(0, 0).A; got != 255 {
		t.Errorf("white texel lost after growth, alpha = %d", got)
	}

	_, err = a.Allocate(64, 100, nil)
	if !errors.Is(err, ErrAtlasFull) {
		t.Errorf("Allocate beyond MaxHeight = %v, want ErrAtlasFull", err)
	}
	if got := a.Size(); got.Y > 128 {
		t.Errorf("atlas grew past MaxHeight: %v", got)
	}
}

func TestStats(t *testing.T) {
	a := newTestAtlas(t, smallConfig())

	if _, err := a.Allocate(64, 40, nil); err != nil {
		t.Fatal(err)
	}

	s := a.Stats()
	if s.Width != 64 || s.Height != 64 || s.Shelves != 2 || s.Allocations != 1 {
		t.Errorf("Stats() = %+v", s)
	}
	// White texel plus 64x40.
	if want := 2561.0 / (64 * 64); s.FillRatio != want {
		t.Errorf("FillRatio = %v, want %v", s.FillRatio, want)
	}
	if want := 2561.0 / (64 * 128); s.Capacity != want {
		t.Errorf("Capacity = %v, want %v", s.Capacity, want)
	}
	if s.RemainingRows != 128-41 {
		t.Errorf("RemainingRows = %d, want %d", s.RemainingRows, 128-41)
	}
}

func TestAllocate_Concurrent(t *testing.T) {
	a := newTestAtlas(t, DefaultConfig())

	const goroutines, perGoroutine = 8, 20
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		rects []image.Rectangle
	)
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				pos, err := a.Allocate(7, 9, func(v View) { v.SetCoverage(0, 0, 1) })
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				rects = append(rects, image.Rectangle{Min: pos, Max: pos.Add(image.Pt(7, 9))})
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if got := a.Stats().Allocations; got != goroutines*perGoroutine {
		t.Errorf("Allocations = %d, want %d", got, goroutines*perGoroutine)
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Overlaps(rects[j]) {
				t.Fatalf("regions %v and %v overlap", rects[i], rects[j])
			}
		}
	}
}

func TestTakeDelta(t *testing.T) {
	a := newTestAtlas(t, smallConfig())

	d, ok := a.TakeDelta()
	if !ok {
		t.Fatal("fresh atlas should have a delta")
	}
	if d.Origin != (image.Point{}) || d.Image.Bounds().Size() != image.Pt(64, 16) {
		t.Errorf("initial delta = %v %v", d.Origin, d.Image.Bounds())
	}
	if !d.Full {
		t.Error("initial delta should be Full")
	}

	if _, ok := a.TakeDelta(); ok {
		t.Error("second TakeDelta without writes should be empty")
	}

	pos, _ := a.Allocate(3, 2, func(v View) { v.SetCoverage(2, 1, 1) })
	d, ok = a.TakeDelta()
	if !ok {
		t.Fatal("expected delta after allocation")
	}
	if d.Origin != pos || d.Image.Bounds().Size() != image.Pt(3, 2) {
		t.Errorf("delta = %v %v, want %v 3x2", d.Origin, d.Image.Bounds(), pos)
	}
	if d.Full {
		t.Error("delta without growth should not be Full")
	}
	if got := d.Image.RGBAAt(2, 1).A; got != 255 {
		t.Errorf("delta pixel alpha = %d, want 255", got)
	}

	a.Allocate(64, 40, nil)
	d, _ = a.TakeDelta()
	if !d.Full || d.Size != image.Pt(64, 64) {
		t.Errorf("delta after growth = Full %v Size %v", d.Full, d.Size)
	}
}

func TestAlphaFromCoverage(t *testing.T) {
	tests := []struct {
		policy   AlphaFromCoverage
		coverage float32
		want     float32
	}{
		{Linear, 0.5, 0.5},
		{Linear, 2, 1},
		{Linear, -1, 0},
		{TwoCoverageMinusCoverageSq, 0.5, 0.75},
		{TwoCoverageMinusCoverageSq, 1, 1},
		{Gamma(2), 0.5, 0.25},
		{Gamma(1), 0.3, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			got := tt.policy.Alpha(tt.coverage)
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("Alpha(%v) = %v, want %v", tt.coverage, got, tt.want)
			}
		})
	}

	if c := Linear.Color(1); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Color(1) = %v", c)
	}
	if c := Linear.Color(0); c != (color.RGBA{}) {
		t.Errorf("Color(0) = %v", c)
	}
}

func TestFormatAndExtent(t *testing.T) {
	a := newTestAtlas(t, smallConfig())

	if a.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v", a.Format())
	}
	ext := a.Extent()
	if ext.Width != 64 || ext.Height != 16 || ext.DepthOrArrayLayers != 1 {
		t.Errorf("Extent() = %+v", ext)
	}
}
