package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/pixel"
)

// Builder constructs images of a fixed size. Obtain one with [Build].
type Builder[P pixel.Pixel] struct {
	width  int
	height int
}

// Build starts building a width x height image.
// It panics if either dimension is not positive.
func Build[P pixel.Pixel](width, height int) Builder[P] {
	if width <= 0 {
		panic("pixbuf: passed zero width to builder")
	}
	if height <= 0 {
		panic("pixbuf: passed zero height to builder")
	}
	return Builder[P]{width: width, height: height}
}

// Len returns the buffer length an image of this size needs.
func (b Builder[P]) Len() int {
	return b.width * b.height * pixel.Channels[P]()
}

// Buf wraps pix as an exclusively borrowed image.
// It panics if len(pix) is not width*height*channels.
func (b Builder[P]) Buf(pix []byte) *Image[P] {
	if want := b.Len(); len(pix) != want {
		panic(fmt.Sprintf("pixbuf: invalid buffer size (expected %d, got %d)", want, len(pix)))
	}
	return b.BufUnchecked(pix)
}

// BufUnchecked wraps pix without validating its length.
// Accessing an image whose buffer is too short panics.
func (b Builder[P]) BufUnchecked(pix []byte) *Image[P] {
	return &Image[P]{pix: pix, width: b.width, height: b.height}
}

// Alloc returns a zero-filled owned image.
func (b Builder[P]) Alloc() *Image[P] {
	return newOwned[P](b.width, b.height, make([]byte, b.Len()))
}

// Fill returns an owned image with every pixel set to p.
func (b Builder[P]) Fill(p P) *Image[P] {
	img := b.Alloc()
	pixel.Store(img.pix, p)
	for i := pixel.Channels[P](); i < len(img.pix); i *= 2 {
		copy(img.pix[i:], img.pix[:i])
	}
	return img
}

// Alloc returns a zero-filled owned width x height image.
// It panics if either dimension is not positive.
func Alloc[P pixel.Pixel](width, height int) *Image[P] {
	return Build[P](width, height).Alloc()
}

// newOwned wraps pix, which the caller guarantees has the right length.
func newOwned[P pixel.Pixel](width, height int, pix []byte) *Image[P] {
	return &Image[P]{pix: pix, width: width, height: height, owned: true}
}
