package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/pixel"
)

// rowOverlay composites one source row onto one destination row.
type rowOverlay func(dst, src []byte)

// overlayRow picks the row routine for painting S onto D.
func overlayRow[D, S pixel.Pixel]() rowOverlay {
	cd, cs := pixel.Channels[D](), pixel.Channels[S]()
	switch {
	case cd == 3 && cs == 4:
		return blit
	case cd == 4 && cs == 4:
		return blitRGBA
	case cd == cs && !pixel.HasAlpha[S]():
		return func(dst, src []byte) { copy(dst, src) }
	}
	return overlayConvert[D, S]
}

// overlayConvert is the general row routine: sources with alpha are written
// when alpha reaches AlphaThreshold, opaque sources always, converted to D.
func overlayConvert[D, S pixel.Pixel](dst, src []byte) {
	cd, cs := pixel.Channels[D](), pixel.Channels[S]()
	alpha := pixel.HasAlpha[S]()
	for i, j := 0, 0; i+cd <= len(dst) && j+cs <= len(src); i, j = i+cd, j+cs {
		if alpha && src[j+cs-1] < AlphaThreshold {
			continue
		}
		pixel.Store(dst[i:], pixel.Convert[D](pixel.Load[S](src[j:])))
	}
}

func checkSameSize(dw, dh, sw, sh int) error {
	if dw != sw || dh != sh {
		return fmt.Errorf("%w: %dx%d onto %dx%d", ErrSizeMismatch, sw, sh, dw, dh)
	}
	return nil
}

func checkPlacement(dw, dh, sw, sh, x, y int) error {
	if x < 0 || y < 0 || x+sw > dw || y+sh > dh {
		return fmt.Errorf("%w: %dx%d at (%d, %d) onto %dx%d", ErrOutOfBounds, sw, sh, x, y, dw, dh)
	}
	return nil
}

// Overlay paints src onto a dst of the same size. Source pixels with alpha
// are written only when alpha reaches [AlphaThreshold].
func Overlay[D, S pixel.Pixel](dst *Image[D], src View[S]) error {
	if err := checkSameSize(dst.width, dst.height, src.width, src.height); err != nil {
		return err
	}
	OverlayAtUnchecked(dst, src, 0, 0)
	return nil
}

// OverlayUnchecked is Overlay without the size check.
func OverlayUnchecked[D, S pixel.Pixel](dst *Image[D], src View[S]) {
	OverlayAtUnchecked(dst, src, 0, 0)
}

// OverlayAt paints src onto dst with its top-left corner at (x, y).
// The source must lie entirely inside the destination.
func OverlayAt[D, S pixel.Pixel](dst *Image[D], src View[S], x, y int) error {
	if err := checkPlacement(dst.width, dst.height, src.width, src.height, x, y); err != nil {
		return err
	}
	OverlayAtUnchecked(dst, src, x, y)
	return nil
}

// OverlayAtUnchecked is OverlayAt without the placement check.
func OverlayAtUnchecked[D, S pixel.Pixel](dst *Image[D], src View[S], x, y int) {
	row := overlayRow[D, S]()
	cd := pixel.Channels[D]()
	for sy := range src.height {
		start := ((y+sy)*dst.width + x) * cd
		row(dst.pix[start:start+src.width*cd], src.Row(sy))
	}
}

// pasteAt copies src into dst at (x, y) verbatim, alpha included.
func pasteAt[P pixel.Pixel](dst *Image[P], src View[P], x, y int) {
	c := pixel.Channels[P]()
	for sy := range src.height {
		start := ((y+sy)*dst.width + x) * c
		copy(dst.pix[start:start+src.width*c], src.Row(sy))
	}
}
