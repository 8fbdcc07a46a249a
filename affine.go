package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/pixel"
)

// swapPixels exchanges pixels i and j (pixel indices, not byte offsets).
func swapPixels(pix []byte, i, j, c int) {
	a := pix[i*c : i*c+c]
	b := pix[j*c : j*c+c]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// FlipV flips the image vertically (upside down) in place.
func (img *Image[P]) FlipV() {
	for y := range img.height / 2 {
		top := img.Row(y)
		bottom := img.Row(img.height - 1 - y)
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
}

// FlipH mirrors the image horizontally in place.
func (img *Image[P]) FlipH() {
	c := pixel.Channels[P]()
	for y := range img.height {
		row := img.Row(y)
		for x := range img.width / 2 {
			swapPixels(row, x, img.width-1-x, c)
		}
	}
}

// Rot180 rotates the image by 180 degrees in place.
func (img *Image[P]) Rot180() {
	c := pixel.Channels[P]()
	w, h := img.width, img.height
	for y := range h / 2 {
		for x := range w {
			swapPixels(img.pix, y*w+x, (h-1-y)*w+(w-1-x), c)
		}
	}
	if h%2 == 1 {
		row := img.Row(h / 2)
		for x := range w / 2 {
			swapPixels(row, x, w-1-x, c)
		}
	}
}

func (img *Image[P]) checkSquare() error {
	if img.width != img.height {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, img.width, img.height)
	}
	return nil
}

// Rot90 rotates a square image clockwise by 90 degrees in place.
func (img *Image[P]) Rot90() error {
	if err := img.checkSquare(); err != nil {
		return err
	}
	img.Rot90Unchecked()
	return nil
}

// Rot90Unchecked is Rot90 without the square check.
// A non-square image is left scrambled.
func (img *Image[P]) Rot90Unchecked() {
	img.FlipV()
	img.TransposeUnchecked()
}

// Rot270 rotates a square image counter-clockwise by 90 degrees in place.
func (img *Image[P]) Rot270() error {
	if err := img.checkSquare(); err != nil {
		return err
	}
	img.Rot270Unchecked()
	return nil
}

// Rot270Unchecked is Rot270 without the square check.
func (img *Image[P]) Rot270Unchecked() {
	img.FlipH()
	img.TransposeUnchecked()
}

// Transpose mirrors a square image across its main diagonal in place.
func (img *Image[P]) Transpose() error {
	if err := img.checkSquare(); err != nil {
		return err
	}
	img.TransposeUnchecked()
	return nil
}

// TransposeUnchecked is Transpose without the square check.
// Sides that are powers of two use a cache-oblivious recursive transpose.
func (img *Image[P]) TransposeUnchecked() {
	n := img.width
	c := pixel.Channels[P]()
	if n&(n-1) == 0 {
		Logger().Debug("pixbuf: tiled transpose", "side", n)
		transposeDiag(img.pix, n, c, 0, n)
		return
	}
	transposeNaive(img.pix, n, c)
}
