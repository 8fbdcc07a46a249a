package pixbuf

import (
	"fmt"
	"iter"

	"github.com/gogpu/pixbuf/pixel"
)

// View is a read-only, shared borrow of a pixel buffer.
// The zero View is not valid; obtain one from [Image.View] or [ViewOf].
type View[P pixel.Pixel] struct {
	pix    []byte
	width  int
	height int
}

// ViewOf wraps pix as a view.
// It panics on non-positive dimensions or a length mismatch, like [Builder.Buf].
func ViewOf[P pixel.Pixel](width, height int, pix []byte) View[P] {
	return Build[P](width, height).Buf(pix).View()
}

// Width returns the view width in pixels.
func (v View[P]) Width() int { return v.width }

// Height returns the view height in pixels.
func (v View[P]) Height() int { return v.height }

// Bytes returns the underlying buffer. It must not be modified.
func (v View[P]) Bytes() []byte { return v.pix }

// Own returns an owned copy of the viewed pixels.
func (v View[P]) Own() *Image[P] {
	pix := make([]byte, len(v.pix))
	copy(pix, v.pix)
	return newOwned[P](v.width, v.height, pix)
}

func (v View[P]) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}

// Pixel returns the pixel at (x, y).
func (v View[P]) Pixel(x, y int) (P, error) {
	if !v.contains(x, y) {
		var zero P
		return zero, fmt.Errorf("%w: pixel (%d, %d) in %dx%d view", ErrOutOfBounds, x, y, v.width, v.height)
	}
	return v.PixelUnchecked(x, y), nil
}

// PixelUnchecked returns the pixel at (x, y) without a bounds check.
func (v View[P]) PixelUnchecked(x, y int) P {
	return pixel.Load[P](v.pix[(y*v.width+x)*pixel.Channels[P]():])
}

// Row returns the bytes of row y.
func (v View[P]) Row(y int) []byte {
	stride := v.width * pixel.Channels[P]()
	return v.pix[y*stride : (y+1)*stride : (y+1)*stride]
}

// Chunked returns the pixels in row-major order.
func (v View[P]) Chunked() iter.Seq[P] {
	return func(yield func(P) bool) {
		c := pixel.Channels[P]()
		for i := 0; i+c <= len(v.pix); i += c {
			if !yield(pixel.Load[P](v.pix[i:])) {
				return
			}
		}
	}
}

// Cloner returns the non-mutating variants of the affine transforms.
func (v View[P]) Cloner() Cloner[P] {
	return Cloner[P]{src: v}
}
