package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

var (
	// ErrUnsupportedFormat is returned for texture formats that are not
	// 8-bit unsigned normalized color.
	ErrUnsupportedFormat = errors.New("gpu: unsupported texture format")

	// ErrNoCreator is returned when a texture must be created without a
	// creator.
	ErrNoCreator = errors.New("gpu: no texture creator")

	// ErrNotUpdatable is returned when a texture implements neither
	// update interface.
	ErrNotUpdatable = errors.New("gpu: texture cannot be updated")
)

// Format returns the texture format matching the layout P.
func Format[P pixel.Pixel]() gputypes.TextureFormat {
	switch pixel.Channels[P]() {
	case 1:
		return gputypes.TextureFormatR8Unorm
	case 2:
		return gputypes.TextureFormatRG8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// Descriptor describes a single-sample 2D texture holding src.
func Descriptor[P pixel.Pixel](src pixbuf.View[P], label string, usage gputypes.TextureUsage) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              uint32(src.Width()),  // #nosec G115 -- image sizes are positive
			Height:             uint32(src.Height()), // #nosec G115 -- image sizes are positive
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        Format[P](),
		Usage:         usage,
	}
}

// TexelSize returns the bytes per texel of f, or 0 when f is unsupported.
func TexelSize(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatRG8Unorm:
		return 2
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return 4
	}
	return 0
}

func isBGRA(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatBGRA8Unorm || f == gputypes.TextureFormatBGRA8UnormSrgb
}

// Bytes lays src out as tightly packed texels of format f. The result
// never aliases src.
func Bytes[P pixel.Pixel](src pixbuf.View[P], f gputypes.TextureFormat) ([]byte, error) {
	switch TexelSize(f) {
	case 1:
		return pixbuf.Convert[pixel.Y](src).Bytes(), nil
	case 2:
		return pixbuf.Convert[pixel.YA](src).Bytes(), nil
	case 4:
		b := rgba(src)
		if isBGRA(f) {
			swapRB(b)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// rgba returns src as tightly packed RGBA texels.
func rgba[P pixel.Pixel](src pixbuf.View[P]) []byte {
	return pixbuf.Convert[pixel.RGBA](src).Bytes()
}

func swapRB(b []byte) {
	for i := 0; i+3 < len(b); i += 4 {
		b[i], b[i+2] = b[i+2], b[i]
	}
}

// Upload creates a texture holding src. Every layout is sent as RGBA.
func Upload[P pixel.Pixel](creator gpucontext.TextureCreator, src pixbuf.View[P]) (gpucontext.Texture, error) {
	if creator == nil {
		return nil, ErrNoCreator
	}
	pixbuf.Logger().Debug("gpu: upload", "width", src.Width(), "height", src.Height())
	tex, err := creator.NewTextureFromRGBA(src.Width(), src.Height(), rgba(src))
	if err != nil {
		return nil, fmt.Errorf("gpu: create texture: %w", err)
	}
	return tex, nil
}

// Update replaces the contents of tex with src. The sizes must match.
func Update[P pixel.Pixel](tex gpucontext.Texture, src pixbuf.View[P]) error {
	u, ok := tex.(gpucontext.TextureUpdater)
	if !ok {
		return ErrNotUpdatable
	}
	if tex.Width() != src.Width() || tex.Height() != src.Height() {
		return fmt.Errorf("%w: texture %dx%d, image %dx%d",
			pixbuf.ErrSizeMismatch, tex.Width(), tex.Height(), src.Width(), src.Height())
	}
	if err := u.UpdateData(rgba(src)); err != nil {
		return fmt.Errorf("gpu: update texture: %w", err)
	}
	return nil
}

// UpdateRegion writes src into tex with its top-left corner at (x, y).
func UpdateRegion[P pixel.Pixel](tex gpucontext.Texture, src pixbuf.View[P], x, y int) error {
	u, ok := tex.(gpucontext.TextureRegionUpdater)
	if !ok {
		return ErrNotUpdatable
	}
	if x < 0 || y < 0 || x+src.Width() > tex.Width() || y+src.Height() > tex.Height() {
		return fmt.Errorf("%w: %dx%d at (%d, %d) in %dx%d texture",
			pixbuf.ErrOutOfBounds, src.Width(), src.Height(), x, y, tex.Width(), tex.Height())
	}
	if err := u.UpdateRegion(x, y, src.Width(), src.Height(), rgba(src)); err != nil {
		return fmt.Errorf("gpu: update region: %w", err)
	}
	return nil
}
