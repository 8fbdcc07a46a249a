package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/pixel"
)

func blender[D, S pixel.Pixel]() (func(*D, S), error) {
	blend, ok := pixel.Blender[D, S]()
	if !ok {
		var (
			d D
			s S
		)
		return nil, fmt.Errorf("%w: %T onto %T", ErrUnsupportedBlend, s, d)
	}
	return blend, nil
}

// BlendOverlay alpha-blends src onto a dst of the same size with the "over"
// operator. Supported pairs are those of [pixel.Blender].
func BlendOverlay[D, S pixel.Pixel](dst *Image[D], src View[S]) error {
	if err := checkSameSize(dst.width, dst.height, src.width, src.height); err != nil {
		return err
	}
	return BlendOverlayAt(dst, src, 0, 0)
}

// BlendOverlayUnchecked is BlendOverlay without validation.
// Unsupported pairs leave dst untouched.
func BlendOverlayUnchecked[D, S pixel.Pixel](dst *Image[D], src View[S]) {
	BlendOverlayAtUnchecked(dst, src, 0, 0)
}

// BlendOverlayAt alpha-blends src onto dst with its top-left corner at (x, y).
func BlendOverlayAt[D, S pixel.Pixel](dst *Image[D], src View[S], x, y int) error {
	blend, err := blender[D, S]()
	if err != nil {
		return err
	}
	if err := checkPlacement(dst.width, dst.height, src.width, src.height, x, y); err != nil {
		return err
	}
	blendAt(dst, src, x, y, blend)
	return nil
}

// BlendOverlayAtUnchecked is BlendOverlayAt without validation.
// Unsupported pairs leave dst untouched.
func BlendOverlayAtUnchecked[D, S pixel.Pixel](dst *Image[D], src View[S], x, y int) {
	if blend, ok := pixel.Blender[D, S](); ok {
		blendAt(dst, src, x, y, blend)
	}
}

func blendAt[D, S pixel.Pixel](dst *Image[D], src View[S], x, y int, blend func(*D, S)) {
	cd, cs := pixel.Channels[D](), pixel.Channels[S]()
	for sy := range src.height {
		start := ((y+sy)*dst.width + x) * cd
		drow := dst.pix[start : start+src.width*cd]
		srow := src.Row(sy)
		for i, j := 0, 0; j < len(srow); i, j = i+cd, j+cs {
			d := pixel.Load[D](drow[i:])
			blend(&d, pixel.Load[S](srow[j:]))
			pixel.Store(drow[i:], d)
		}
	}
}

// BlendAlphaAndColorAt paints color onto dst through a coverage mask placed
// at (x, y). Mask value 0 leaves a pixel alone, 255 replaces it, anything in
// between interpolates towards color.
func BlendAlphaAndColorAt(dst *Image[pixel.RGB], mask View[pixel.Y], color pixel.RGB, x, y int) error {
	if err := checkPlacement(dst.width, dst.height, mask.width, mask.height, x, y); err != nil {
		return err
	}
	BlendAlphaAndColorAtUnchecked(dst, mask, color, x, y)
	return nil
}

// BlendAlphaAndColorAtUnchecked is BlendAlphaAndColorAt without the
// placement check.
func BlendAlphaAndColorAtUnchecked(dst *Image[pixel.RGB], mask View[pixel.Y], color pixel.RGB, x, y int) {
	for my := range mask.height {
		start := ((y+my)*dst.width + x) * 3
		drow := dst.pix[start : start+mask.width*3]
		for mx, a := range mask.Row(my) {
			d := pixel.RGB(drow[mx*3 : mx*3+3])
			pixel.BlendAlphaAndColor(a, color, &d)
			copy(drow[mx*3:], d[:])
		}
	}
}
