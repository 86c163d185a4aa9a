package atlas

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/glyphatlas"
)

// Atlas is a growable RGBA texture shared by glyph faces.
//
// Atlas is safe for concurrent use. It must not be copied after creation.
type Atlas struct {
	mu sync.Mutex

	cfg     Config
	img     *image.RGBA
	shelves *ShelfAllocator
	white   image.Rectangle

	// delta and upload track changes for TakeDelta and Upload separately,
	// so draining one never hides pixels from the other.
	delta  changes
	upload changes

	allocations int

	texture any
}

// View is a writable window onto one allocated region of the atlas.
// It is only valid inside the draw callback passed to Allocate.
type View struct {
	img     *image.RGBA
	origin  image.Point
	size    image.Point
	mapping AlphaFromCoverage
}

// Size returns the width and height of the region.
func (v View) Size() image.Point {
	return v.size
}

// Set stores a pixel. Coordinates are relative to the region;
// writes outside of it are dropped.
func (v View) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= v.size.X || y >= v.size.Y {
		return
	}
	v.img.SetRGBA(v.origin.X+x, v.origin.Y+y, c)
}

// SetCoverage stores a coverage sample through the atlas's
// AlphaFromCoverage policy. Zero coverage leaves the pixel untouched.
func (v View) SetCoverage(x, y int, coverage float32) {
	if coverage <= 0 {
		return
	}
	v.Set(x, y, v.mapping.Color(coverage))
}

// New creates an atlas. The top-left texel is reserved as opaque white
// for drawing untextured shapes from the same texture.
func New(cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Atlas{
		cfg:     cfg,
		img:     image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.InitialHeight)),
		shelves: NewShelfAllocator(cfg.Width, cfg.MaxHeight, cfg.Padding),
	}

	x, y, ok := a.shelves.Allocate(1, 1)
	if !ok {
		return nil, fmt.Errorf("%w: cannot reserve white texel", ErrAtlasFull)
	}
	a.white = image.Rect(x, y, x+1, y+1)
	a.img.SetRGBA(x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	a.markResized()

	return a, nil
}

// Allocate reserves a width×height region and calls draw with a view onto
// it. The atlas lock is held for the allocation and the draw callback only.
// The returned point is the region's top-left texel.
//
// draw may be nil, leaving the region transparent.
func (a *Atlas) Allocate(width, height int, draw func(View)) (image.Point, error) {
	if width <= 0 || height <= 0 {
		return image.Point{}, fmt.Errorf("%w: %dx%d", ErrInvalidRegion, width, height)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	x, y, ok := a.shelves.Allocate(width, height)
	if !ok {
		return image.Point{}, fmt.Errorf("%w: %dx%d in %dx%d atlas",
			ErrAtlasFull, width, height, a.cfg.Width, a.img.Rect.Dy())
	}
	a.growTo(a.shelves.Bottom())

	pos := image.Pt(x, y)
	region := image.Rectangle{Min: pos, Max: pos.Add(image.Pt(width, height))}
	if draw != nil {
		draw(View{
			img:     a.img,
			origin:  pos,
			size:    region.Size(),
			mapping: a.cfg.AlphaFromCoverage,
		})
	}

	a.markDirty(region)
	a.allocations++
	return pos, nil
}

// growTo doubles the image height until it covers bottom rows.
// Must be called with the lock held.
func (a *Atlas) growTo(bottom int) {
	h := a.img.Rect.Dy()
	if bottom <= h {
		return
	}
	for h < bottom {
		h *= 2
	}
	h = min(h, a.cfg.MaxHeight)

	grown := image.NewRGBA(image.Rect(0, 0, a.cfg.Width, h))
	copy(grown.Pix, a.img.Pix) // same stride, rows line up
	a.img = grown
	a.markResized()

	glyphatlas.Logger().Debug("atlas: grown",
		"width", a.cfg.Width,
		"height", h,
		"allocations", a.allocations)
}

// changes is the region written since a consumer last synced.
type changes struct {
	dirty image.Rectangle
	// resized is set when the image grew; the consumer must start over.
	resized bool
}

func (c *changes) reset() {
	*c = changes{}
}

// markDirty records region for every consumer. Must be called with the lock held.
func (a *Atlas) markDirty(region image.Rectangle) {
	a.delta.dirty = a.delta.dirty.Union(region)
	a.upload.dirty = a.upload.dirty.Union(region)
}

// markResized marks the whole image changed for every consumer.
// Must be called with the lock held.
func (a *Atlas) markResized() {
	for _, c := range []*changes{&a.delta, &a.upload} {
		c.dirty = a.img.Bounds()
		c.resized = true
	}
}

// WhiteUV returns the texel rectangle of the reserved white pixel.
func (a *Atlas) WhiteUV() image.Rectangle {
	return a.white
}

// AlphaFromCoverage returns the coverage policy the atlas was built with.
func (a *Atlas) AlphaFromCoverage() AlphaFromCoverage {
	return a.cfg.AlphaFromCoverage
}

// Size returns the current image size in texels.
func (a *Atlas) Size() image.Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.img.Rect.Size()
}

// Snapshot returns a copy of the atlas image.
func (a *Atlas) Snapshot() *image.RGBA {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneRGBA(a.img, a.img.Rect)
}

// Stats describes atlas usage.
type Stats struct {
	// Allocations is the number of successful Allocate calls.
	Allocations int
	// Width and Height are the current image size.
	Width, Height int
	// Shelves is the number of packing shelves in use.
	Shelves int
	// FillRatio is the allocated fraction of the current image area.
	FillRatio float64
	// Capacity is the allocated fraction of the largest the atlas may grow to.
	Capacity float64
	// RemainingRows is the number of texel rows still free for new shelves.
	RemainingRows int
}

// Stats returns current usage statistics.
func (a *Atlas) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	size := a.img.Rect.Size()
	var fill float64
	if area := size.X * size.Y; area > 0 {
		fill = float64(a.shelves.UsedArea()) / float64(area)
	}
	return Stats{
		Allocations:   a.allocations,
		Width:         size.X,
		Height:        size.Y,
		Shelves:       a.shelves.ShelfCount(),
		FillRatio:     fill,
		Capacity:      a.shelves.Utilization(),
		RemainingRows: a.shelves.RemainingHeight(),
	}
}

// Delta is a patch of pixels changed since the previous TakeDelta.
type Delta struct {
	// Origin is where Image goes in the full atlas texture.
	Origin image.Point
	// Image holds the changed pixels; its bounds start at (0, 0).
	Image *image.RGBA
	// Full is set when the atlas grew. The texture must be recreated with
	// Size before the patch is applied.
	Full bool
	// Size is the full atlas size at the time of the delta.
	Size image.Point
}

// TakeDelta returns the pixels written since the last call and clears the
// dirty state. ok is false when nothing changed. It does not affect Upload.
func (a *Atlas) TakeDelta() (d Delta, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.delta.dirty.Empty() {
		return Delta{}, false
	}
	d = Delta{
		Origin: a.delta.dirty.Min,
		Image:  cloneRGBA(a.img, a.delta.dirty),
		Full:   a.delta.resized,
		Size:   a.img.Rect.Size(),
	}
	a.delta.reset()
	return d, true
}

// cloneRGBA copies r out of src into a new image anchored at (0, 0).
func cloneRGBA(src *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(src.Rect)
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	rowLen := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		srcOff := src.PixOffset(r.Min.X, r.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[srcOff:srcOff+rowLen])
	}
	return dst
}
