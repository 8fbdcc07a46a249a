package pixbuf

import "github.com/gogpu/pixbuf/pixel"

// Cloner applies transforms to a copy of a view, leaving the source intact.
// Obtain one with [View.Cloner].
type Cloner[P pixel.Pixel] struct {
	src View[P]
}

// FlipV returns a vertically flipped copy.
func (c Cloner[P]) FlipV() *Image[P] {
	img := c.src.Own()
	img.FlipV()
	return img
}

// FlipH returns a horizontally mirrored copy.
func (c Cloner[P]) FlipH() *Image[P] {
	img := c.src.Own()
	img.FlipH()
	return img
}

// Rot180 returns a copy rotated by 180 degrees.
func (c Cloner[P]) Rot180() *Image[P] {
	img := c.src.Own()
	img.Rot180()
	return img
}

// Rot90 returns a copy rotated clockwise by 90 degrees.
func (c Cloner[P]) Rot90() (*Image[P], error) {
	return c.square((*Image[P]).Rot90Unchecked)
}

// Rot270 returns a copy rotated counter-clockwise by 90 degrees.
func (c Cloner[P]) Rot270() (*Image[P], error) {
	return c.square((*Image[P]).Rot270Unchecked)
}

// Transpose returns a transposed copy.
func (c Cloner[P]) Transpose() (*Image[P], error) {
	return c.square((*Image[P]).TransposeUnchecked)
}

func (c Cloner[P]) square(op func(*Image[P])) (*Image[P], error) {
	img := c.src.Own()
	if err := img.checkSquare(); err != nil {
		return nil, err
	}
	op(img)
	return img, nil
}

// OverlayCloned returns a copy of dst with src overlaid as by [Overlay].
func OverlayCloned[D, S pixel.Pixel](dst View[D], src View[S]) (*Image[D], error) {
	if err := checkSameSize(dst.width, dst.height, src.width, src.height); err != nil {
		return nil, err
	}
	out := dst.Own()
	OverlayAtUnchecked(out, src, 0, 0)
	return out, nil
}

// OverlayAtCloned returns a copy of dst with src overlaid at (x, y) as by
// [OverlayAt].
func OverlayAtCloned[D, S pixel.Pixel](dst View[D], src View[S], x, y int) (*Image[D], error) {
	if err := checkPlacement(dst.width, dst.height, src.width, src.height, x, y); err != nil {
		return nil, err
	}
	out := dst.Own()
	OverlayAtUnchecked(out, src, x, y)
	return out, nil
}

// BlendOverlayCloned returns a copy of dst with src blended as by
// [BlendOverlay].
func BlendOverlayCloned[D, S pixel.Pixel](dst View[D], src View[S]) (*Image[D], error) {
	if err := checkSameSize(dst.width, dst.height, src.width, src.height); err != nil {
		return nil, err
	}
	return BlendOverlayAtCloned(dst, src, 0, 0)
}

// BlendOverlayAtCloned returns a copy of dst with src blended at (x, y) as
// by [BlendOverlayAt].
func BlendOverlayAtCloned[D, S pixel.Pixel](dst View[D], src View[S], x, y int) (*Image[D], error) {
	blend, err := blender[D, S]()
	if err != nil {
		return nil, err
	}
	if err := checkPlacement(dst.width, dst.height, src.width, src.height, x, y); err != nil {
		return nil, err
	}
	out := dst.Own()
	blendAt(out, src, x, y, blend)
	return out, nil
}
