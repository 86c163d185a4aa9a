// Package atlas provides the texture atlas that glyph faces rasterize into.
//
// An Atlas owns one RGBA image and hands out rectangular regions of it.
// Several faces (different sizes of one typeface, or the members of a
// fallback chain) share a single Atlas, so every allocation and the pixel
// writes that follow it happen under the atlas lock:
//
//	pos, err := a.Allocate(w, h, func(v atlas.View) {
//	    for each covered pixel (x, y) {
//	        v.SetCoverage(x, y, coverage)
//	    }
//	})
//
// The lock is held only for the duration of Allocate. Coverage values in
// [0, 1] are turned into premultiplied white pixels by the atlas's
// AlphaFromCoverage policy.
//
// # Packing
//
// Regions are packed left-to-right on horizontal shelves (ShelfAllocator).
// The image starts short and doubles in height as shelves are added, up to
// Config.MaxHeight. Beyond that Allocate returns ErrAtlasFull.
//
// # GPU upload
//
// Upload creates a texture on first use (or after the image grew) and
// pushes dirty pixels through gpucontext.TextureUpdater afterwards.
// TakeDelta is available for hosts that prefer partial updates. The two
// track changes separately, so a host may use both.
package atlas
