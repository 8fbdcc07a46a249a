package filter

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// Box returns a copy of src with a box blur of the given radius applied.
func Box[P pixel.Pixel](src pixbuf.View[P], radius float64) (*pixbuf.Image[P], error) {
	if radius <= 0 {
		return src.Own(), nil
	}
	return pixbuf.FromImage[P](blur.Box(pixbuf.StdImage(src), radius))
}

// Gaussian returns a copy of src blurred with the given sigma. Colors are
// weighted by alpha, so transparent pixels do not bleed into their
// neighbors.
func Gaussian[P pixel.Pixel](src pixbuf.View[P], sigma float64) (*pixbuf.Image[P], error) {
	if sigma <= 0 {
		return src.Own(), nil
	}
	return pixbuf.FromImage[P](imaging.Blur(pixbuf.StdImage(src), sigma))
}
