// Package dyn provides an image whose pixel layout is chosen at run time.
//
// Most of pixbuf is generic over the pixel layout, which must be known at
// compile time. Programs that handle files of unknown layout, such as the
// pixbuf command, load a [*Image] instead and let it dispatch to the
// generic code.
package dyn

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// Format is a pixel layout.
type Format uint8

const (
	// Y is 8-bit luma (1 byte per pixel).
	Y Format = iota

	// YA is 8-bit luma with alpha (2 bytes per pixel).
	YA

	// RGB is 24-bit color (3 bytes per pixel, no alpha).
	RGB

	// RGBA is 32-bit color with straight alpha (4 bytes per pixel).
	RGBA

	formatCount
)

// FormatInfo describes a pixel layout.
type FormatInfo struct {
	// Channels is the number of channels, which is also the number of bytes
	// per pixel.
	Channels int

	// HasAlpha indicates if the last channel is alpha.
	HasAlpha bool

	// IsGrayscale indicates if color is stored as a single luma channel.
	IsGrayscale bool
}

var formatInfoTable = [formatCount]FormatInfo{
	Y:    {Channels: 1, IsGrayscale: true},
	YA:   {Channels: 2, HasAlpha: true, IsGrayscale: true},
	RGB:  {Channels: 3},
	RGBA: {Channels: 4, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of channels per pixel.
func (f Format) Channels() int { return f.Info().Channels }

// HasAlpha reports whether the format carries alpha.
func (f Format) HasAlpha() bool { return f.Info().HasAlpha }

// IsGrayscale reports whether the format stores luma only.
func (f Format) IsGrayscale() bool { return f.Info().IsGrayscale }

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool { return f < formatCount }

// RowBytes returns the number of bytes in a row of the given width.
func (f Format) RowBytes(width int) int { return width * f.Channels() }

// ImageBytes returns the number of bytes in an image of the given size.
func (f Format) ImageBytes(width, height int) int { return f.RowBytes(width) * height }

// WithAlpha returns the format with an alpha channel added.
func (f Format) WithAlpha() Format {
	switch f {
	case Y:
		return YA
	case RGB:
		return RGBA
	default:
		return f
	}
}

// TextureFormat returns the GPU texture format for f. RGB has no 8-bit
// three channel texture format and maps to RGBA8.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case Y:
		return gputypes.TextureFormatR8Unorm
	case YA:
		return gputypes.TextureFormatRG8Unorm
	case RGB, RGBA:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

func (f Format) String() string {
	switch f {
	case Y:
		return "Y"
	case YA:
		return "YA"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// FormatFor returns the format with the given number of channels.
func FormatFor(channels int) (Format, error) {
	if channels < 1 || channels > int(formatCount) {
		return 0, fmt.Errorf("dyn: no format with %d channels", channels)
	}
	return Format(channels - 1), nil // #nosec G115 -- checked above
}

// FormatOf returns the format that holds src without loss of channels:
// luma for gray images, RGB for opaque ones and RGBA otherwise.
func FormatOf(src image.Image) Format {
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return Y
	}
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return RGB
	}
	return RGBA
}
