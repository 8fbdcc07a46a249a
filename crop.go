package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/pixel"
)

func checkCrop(w, h, x, y, cw, ch int) error {
	if cw <= 0 || ch <= 0 || x < 0 || y < 0 || x+cw > w || y+ch > h {
		return fmt.Errorf("%w: crop %dx%d at (%d, %d) of %dx%d", ErrOutOfBounds, cw, ch, x, y, w, h)
	}
	return nil
}

// SubView is a read-only rectangular window into a view.
type SubView[P pixel.Pixel] struct {
	parent        View[P]
	x, y          int
	width, height int
}

// Crop returns the w x h window of v whose top-left corner is (x, y).
func (v View[P]) Crop(x, y, w, h int) (SubView[P], error) {
	if err := checkCrop(v.width, v.height, x, y, w, h); err != nil {
		return SubView[P]{}, err
	}
	return SubView[P]{parent: v, x: x, y: y, width: w, height: h}, nil
}

// Width returns the window width.
func (s SubView[P]) Width() int { return s.width }

// Height returns the window height.
func (s SubView[P]) Height() int { return s.height }

// Pixel returns the pixel at (x, y) relative to the window.
func (s SubView[P]) Pixel(x, y int) (P, error) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		var zero P
		return zero, fmt.Errorf("%w: pixel (%d, %d) in %dx%d crop", ErrOutOfBounds, x, y, s.width, s.height)
	}
	return s.PixelUnchecked(x, y), nil
}

// PixelUnchecked returns the pixel at (x, y) relative to the window without
// a bounds check.
func (s SubView[P]) PixelUnchecked(x, y int) P {
	return s.parent.PixelUnchecked(s.x+x, s.y+y)
}

// Own copies the window into a new owned image.
func (s SubView[P]) Own() *Image[P] {
	c := pixel.Channels[P]()
	pix := make([]byte, 0, s.width*s.height*c)
	for y := range s.height {
		row := s.parent.Row(s.y + y)
		pix = append(pix, row[s.x*c:(s.x+s.width)*c]...)
	}
	return newOwned[P](s.width, s.height, pix)
}

// SubImage is a mutable rectangular window into an image.
// Writes go through to the parent.
type SubImage[P pixel.Pixel] struct {
	parent        *Image[P]
	x, y          int
	width, height int
}

// Crop returns the w x h window of img whose top-left corner is (x, y).
func (img *Image[P]) Crop(x, y, w, h int) (SubImage[P], error) {
	if err := checkCrop(img.width, img.height, x, y, w, h); err != nil {
		return SubImage[P]{}, err
	}
	return SubImage[P]{parent: img, x: x, y: y, width: w, height: h}, nil
}

// Width returns the window width.
func (s SubImage[P]) Width() int { return s.width }

// Height returns the window height.
func (s SubImage[P]) Height() int { return s.height }

// View returns the window as a read-only SubView.
func (s SubImage[P]) View() SubView[P] {
	return SubView[P]{parent: s.parent.View(), x: s.x, y: s.y, width: s.width, height: s.height}
}

// Pixel returns the pixel at (x, y) relative to the window.
func (s SubImage[P]) Pixel(x, y int) (P, error) {
	return s.View().Pixel(x, y)
}

// SetPixel writes p at (x, y) relative to the window.
func (s SubImage[P]) SetPixel(x, y int, p P) error {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return fmt.Errorf("%w: pixel (%d, %d) in %dx%d crop", ErrOutOfBounds, x, y, s.width, s.height)
	}
	s.SetPixelUnchecked(x, y, p)
	return nil
}

// SetPixelUnchecked writes p at (x, y) relative to the window without a
// bounds check.
func (s SubImage[P]) SetPixelUnchecked(x, y int, p P) {
	s.parent.SetPixelUnchecked(s.x+x, s.y+y, p)
}

// Own copies the window into a new owned image.
func (s SubImage[P]) Own() *Image[P] {
	return s.View().Own()
}
