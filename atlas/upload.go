package atlas

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glyphatlas"
)

// TextureCreator creates GPU textures from RGBA pixel data.
// This matches the texture creation half of gpucontext.TextureCreator.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// Format returns the GPU texture format of the atlas pixels.
// Pixels are premultiplied white, so the host should blend with
// premultiplied alpha.
func (a *Atlas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Extent returns the current atlas size as a GPU extent.
func (a *Atlas) Extent() gputypes.Extent3D {
	size := a.Size()
	return gputypes.Extent3D{
		Width:              uint32(size.X), //nolint:gosec // bounded by MaxSide
		Height:             uint32(size.Y), //nolint:gosec // bounded by MaxSide
		DepthOrArrayLayers: 1,
	}
}

// Upload brings the GPU copy of the atlas up to date and returns it.
//
// The texture is created on the first call and recreated whenever the
// atlas grew since the previous upload (the previous texture is destroyed
// if it supports Destroy). Otherwise dirty pixels are pushed through
// gpucontext.TextureUpdater, when the texture implements it.
//
// Upload keeps its own change tracking, independent of TakeDelta.
// It is meant to be called once per frame from the render thread.
func (a *Atlas) Upload(creator TextureCreator) (any, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	size := a.img.Rect.Size()

	if a.texture == nil || a.upload.resized {
		data := make([]byte, len(a.img.Pix))
		copy(data, a.img.Pix)

		tex, err := creator.NewTextureFromRGBA(size.X, size.Y, data)
		if err != nil {
			return nil, fmt.Errorf("atlas: texture creation failed: %w", err)
		}
		if old, ok := a.texture.(textureDestroyer); ok {
			old.Destroy()
		}

		glyphatlas.Logger().Debug("atlas: texture created",
			"width", size.X,
			"height", size.Y)

		a.texture = tex
		a.upload.reset()
		return tex, nil
	}

	if a.upload.dirty.Empty() {
		return a.texture, nil
	}

	if updater, ok := a.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(a.img.Pix); err != nil {
			return nil, fmt.Errorf("atlas: texture update failed: %w", err)
		}
		glyphatlas.Logger().Debug("atlas: texture updated",
			"dirty", a.upload.dirty.String())
	}

	a.upload.reset()
	return a.texture, nil
}

// Texture returns the texture from the last Upload, or nil.
func (a *Atlas) Texture() any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.texture
}
