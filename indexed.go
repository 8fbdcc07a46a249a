package pixbuf

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixbuf/pixel"
)

// ErrPalette is returned when a palette is empty, has more than 256
// entries, or does not cover every index of an indexed image.
var ErrPalette = errors.New("pixbuf: index outside palette")

// Indexed is an image of one byte palette indices.
type Indexed[P pixel.Pixel] struct {
	index   *Image[pixel.Y]
	palette []P
}

// NewIndexed pairs an index image with its palette. Every index must be
// smaller than len(palette).
func NewIndexed[P pixel.Pixel](index *Image[pixel.Y], palette []P) (*Indexed[P], error) {
	if len(palette) == 0 || len(palette) > 256 {
		return nil, fmt.Errorf("%w: palette of %d colors", ErrPalette, len(palette))
	}
	for i, b := range index.pix {
		if int(b) >= len(palette) {
			return nil, fmt.Errorf("%w: index %d at (%d, %d), palette of %d colors",
				ErrPalette, b, i%index.width, i/index.width, len(palette))
		}
	}
	return &Indexed[P]{index: index, palette: palette}, nil
}

// Width returns the image width in pixels.
func (ix *Indexed[P]) Width() int { return ix.index.width }

// Height returns the image height in pixels.
func (ix *Indexed[P]) Height() int { return ix.index.height }

// Palette returns the palette. It must not be shrunk.
func (ix *Indexed[P]) Palette() []P { return ix.palette }

// Indices returns the index buffer in row-major order. It must not be
// modified; use SetIndex.
func (ix *Indexed[P]) Indices() []byte { return ix.index.pix }

// At returns the palette color of the pixel at (x, y).
func (ix *Indexed[P]) At(x, y int) (P, error) {
	i, err := ix.index.Pixel(x, y)
	if err != nil {
		var zero P
		return zero, err
	}
	return ix.palette[i[0]], nil
}

// SetIndex points the pixel at (x, y) at palette entry i.
func (ix *Indexed[P]) SetIndex(x, y int, i byte) error {
	if int(i) >= len(ix.palette) {
		return fmt.Errorf("%w: index %d, palette of %d colors", ErrPalette, i, len(ix.palette))
	}
	return ix.index.SetPixel(x, y, pixel.Y{i})
}

// Expand looks every index up in the palette.
func (ix *Indexed[P]) Expand() *Image[P] {
	out := Alloc[P](ix.index.width, ix.index.height)
	c := pixel.Channels[P]()
	for i, b := range ix.index.pix {
		pixel.Store(out.pix[i*c:], ix.palette[b])
	}
	return out
}
