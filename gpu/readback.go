package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// BytesPerRowAlignment is the row pitch alignment required for
// texture-to-buffer copies.
const BytesPerRowAlignment = 256

// PaddedBytesPerRow rounds a row of width texels of format f up to
// BytesPerRowAlignment.
func PaddedBytesPerRow(width int, f gputypes.TextureFormat) int {
	row := width * TexelSize(f)
	return (row + BytesPerRowAlignment - 1) / BytesPerRowAlignment * BytesPerRowAlignment
}

// Pad lays src out as texels of format f with rows padded for a
// buffer-to-texture copy. It returns the buffer and its row pitch.
func Pad[P pixel.Pixel](src pixbuf.View[P], f gputypes.TextureFormat) ([]byte, int, error) {
	tight, err := Bytes(src, f)
	if err != nil {
		return nil, 0, err
	}
	row := src.Width() * TexelSize(f)
	pitch := PaddedBytesPerRow(src.Width(), f)
	out := make([]byte, pitch*src.Height())
	for y := range src.Height() {
		copy(out[y*pitch:], tight[y*row:(y+1)*row])
	}
	return out, pitch, nil
}

// Unpad reads a width x height image of format f from data, a buffer
// mapped after a texture copy whose rows are bytesPerRow apart.
func Unpad[P pixel.Pixel](data []byte, width, height, bytesPerRow int, f gputypes.TextureFormat) (*pixbuf.Image[P], error) {
	texel := TexelSize(f)
	if texel == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pixbuf.ErrEmptyImage, width, height)
	}
	row := width * texel
	if bytesPerRow < row || len(data) < bytesPerRow*(height-1)+row {
		return nil, fmt.Errorf("%w: %d bytes with pitch %d for %dx%d %v",
			pixbuf.ErrSizeMismatch, len(data), bytesPerRow, width, height, f)
	}

	pix := make([]byte, row*height)
	for y := range height {
		copy(pix[y*row:(y+1)*row], data[y*bytesPerRow:])
	}

	switch texel {
	case 1:
		return pixbuf.Convert[P](pixbuf.ViewOf[pixel.Y](width, height, pix)), nil
	case 2:
		return pixbuf.Convert[P](pixbuf.ViewOf[pixel.YA](width, height, pix)), nil
	default:
		if isBGRA(f) {
			swapRB(pix)
		}
		return pixbuf.Convert[P](pixbuf.ViewOf[pixel.RGBA](width, height, pix)), nil
	}
}
