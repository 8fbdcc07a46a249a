package pixbuf

import (
	"fmt"
	"iter"

	"github.com/gogpu/pixbuf/pixel"
)

// Image is a mutable pixel buffer with layout P.
//
// The buffer is row-major and channel-interleaved with no padding:
// len(Bytes()) == Width()*Height()*channels, and pixel (x, y) starts at
// (y*Width() + x) * channels.
//
// An Image either owns its buffer or exclusively borrows caller memory.
// Image is not safe for concurrent mutation.
type Image[P pixel.Pixel] struct {
	pix    []byte
	width  int
	height int
	owned  bool
}

// Width returns the image width in pixels.
func (img *Image[P]) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image[P]) Height() int { return img.height }

// Bytes returns the underlying buffer. Writes go straight to the image.
func (img *Image[P]) Bytes() []byte { return img.pix }

// Owned reports whether the image allocated its own buffer.
func (img *Image[P]) Owned() bool { return img.owned }

// View returns a read-only view sharing the image's buffer.
func (img *Image[P]) View() View[P] {
	return View[P]{pix: img.pix, width: img.width, height: img.height}
}

// Clone returns an owned deep copy.
func (img *Image[P]) Clone() *Image[P] {
	return img.View().Own()
}

func (img *Image[P]) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

func (img *Image[P]) offset(x, y int) int {
	return (y*img.width + x) * pixel.Channels[P]()
}

func (img *Image[P]) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: pixel (%d, %d) in %dx%d image", ErrOutOfBounds, x, y, img.width, img.height)
}

// Pixel returns the pixel at (x, y).
func (img *Image[P]) Pixel(x, y int) (P, error) {
	if !img.contains(x, y) {
		var zero P
		return zero, img.outOfBounds(x, y)
	}
	return img.PixelUnchecked(x, y), nil
}

// PixelUnchecked returns the pixel at (x, y) without a bounds check.
// Coordinates outside the image may read a neighbouring pixel or panic.
func (img *Image[P]) PixelUnchecked(x, y int) P {
	return pixel.Load[P](img.pix[img.offset(x, y):])
}

// SetPixel writes p at (x, y).
func (img *Image[P]) SetPixel(x, y int, p P) error {
	if !img.contains(x, y) {
		return img.outOfBounds(x, y)
	}
	img.SetPixelUnchecked(x, y, p)
	return nil
}

// SetPixelUnchecked writes p at (x, y) without a bounds check.
func (img *Image[P]) SetPixelUnchecked(x, y int, p P) {
	pixel.Store(img.pix[img.offset(x, y):], p)
}

// PixelMut returns the bytes of the pixel at (x, y). Writing them changes
// the image.
func (img *Image[P]) PixelMut(x, y int) ([]byte, error) {
	if !img.contains(x, y) {
		return nil, img.outOfBounds(x, y)
	}
	return img.PixelMutUnchecked(x, y), nil
}

// PixelMutUnchecked is PixelMut without a bounds check.
func (img *Image[P]) PixelMutUnchecked(x, y int) []byte {
	off := img.offset(x, y)
	end := off + pixel.Channels[P]()
	return img.pix[off:end:end]
}

// Row returns the bytes of row y.
func (img *Image[P]) Row(y int) []byte {
	stride := img.width * pixel.Channels[P]()
	return img.pix[y*stride : (y+1)*stride : (y+1)*stride]
}

// Chunked returns the pixels in row-major order.
func (img *Image[P]) Chunked() iter.Seq[P] {
	return img.View().Chunked()
}

// ChunkedMut yields the bytes of every pixel in row-major order.
func (img *Image[P]) ChunkedMut() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		c := pixel.Channels[P]()
		for i := 0; i+c <= len(img.pix); i += c {
			if !yield(img.pix[i : i+c : i+c]) {
				return
			}
		}
	}
}
