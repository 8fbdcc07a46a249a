package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/pixel"
)

// Convert returns a copy of src with every pixel converted to layout T.
func Convert[T, F pixel.Pixel](src View[F]) *Image[T] {
	if pixel.Channels[T]() == pixel.Channels[F]() {
		img := src.Own()
		return newOwned[T](img.width, img.height, img.pix)
	}
	out := Alloc[T](src.width, src.height)
	ct, cf := pixel.Channels[T](), pixel.Channels[F]()
	for i, j := 0, 0; j < len(src.pix); i, j = i+ct, j+cf {
		pixel.Store(out.pix[i:], pixel.Convert[T](pixel.Load[F](src.pix[j:])))
	}
	return out
}

// Repeated tiles src to fill a width x height image. Both dimensions must be
// multiples of the source dimensions.
func Repeated[P pixel.Pixel](src View[P], width, height int) (*Image[P], error) {
	if width <= 0 || height <= 0 || width%src.width != 0 || height%src.height != 0 {
		return nil, fmt.Errorf("%w: %dx%d is not a multiple of %dx%d", ErrSizeMismatch, width, height, src.width, src.height)
	}
	out := Alloc[P](width, height)
	for y := 0; y < height; y += src.height {
		for x := 0; x < width; x += src.width {
			pasteAt(out, src, x, y)
		}
	}
	return out, nil
}

// Packed is an image of 0xAARRGGBB words, one per pixel.
type Packed struct {
	Pix    []uint32
	Width  int
	Height int
}

// Pack converts src to packed ARGB words.
func Pack[P pixel.Pixel](src View[P]) *Packed {
	out := &Packed{Pix: make([]uint32, 0, src.width*src.height), Width: src.width, Height: src.height}
	for p := range src.Chunked() {
		out.Pix = append(out.Pix, pixel.PackPixel(p))
	}
	return out
}

// Unpack converts packed ARGB words to layout P.
func Unpack[P pixel.Pixel](p *Packed) *Image[P] {
	out := Alloc[P](p.Width, p.Height)
	c := pixel.Channels[P]()
	for i, n := range p.Pix {
		pixel.Store(out.pix[i*c:], pixel.UnpackPixel[P](n))
	}
	return out
}

// FloatImage holds channel values normalized to [0, 1], in the same layout
// as the byte image it came from.
type FloatImage[P pixel.Pixel] struct {
	Pix    []float32
	Width  int
	Height int
}

// ToFloat normalizes every channel of src to [0, 1].
func ToFloat[P pixel.Pixel](src View[P]) *FloatImage[P] {
	out := &FloatImage[P]{Pix: make([]float32, len(src.pix)), Width: src.width, Height: src.height}
	pixel.U8sToF32s(out.Pix, src.pix)
	return out
}

// ToBytes quantizes f back to a byte image, rounding to nearest.
func (f *FloatImage[P]) ToBytes() *Image[P] {
	out := Alloc[P](f.Width, f.Height)
	pixel.F32sToU8s(out.pix, f.Pix)
	return out
}
