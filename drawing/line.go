package drawing

import (
	"image"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// octant identifies which of the eight octants a line direction falls in.
// Lines are walked in octant 0 (dx >= dy >= 0) and mapped back.
type octant uint8

func octantOf(start, end image.Point) octant {
	dx, dy := end.X-start.X, end.Y-start.Y
	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

func (o octant) toOctant0(p image.Point) image.Point {
	switch o {
	case 1:
		return image.Pt(p.Y, p.X)
	case 2:
		return image.Pt(p.Y, -p.X)
	case 3:
		return image.Pt(-p.X, p.Y)
	case 4:
		return image.Pt(-p.X, -p.Y)
	case 5:
		return image.Pt(-p.Y, -p.X)
	case 6:
		return image.Pt(-p.Y, p.X)
	case 7:
		return image.Pt(p.X, -p.Y)
	}
	return p
}

func (o octant) fromOctant0(p image.Point) image.Point {
	switch o {
	case 1:
		return image.Pt(p.Y, p.X)
	case 2:
		return image.Pt(-p.Y, p.X)
	case 3:
		return image.Pt(-p.X, p.Y)
	case 4:
		return image.Pt(-p.X, -p.Y)
	case 5:
		return image.Pt(-p.Y, -p.X)
	case 6:
		return image.Pt(p.Y, -p.X)
	case 7:
		return image.Pt(p.X, -p.Y)
	}
	return p
}

// Bresenham iterates the integer points of a line segment, both ends
// included.
type Bresenham struct {
	x, y   int
	dx, dy int
	x1     int
	diff   int
	octant octant
}

// NewBresenham returns an iterator over the points from start to end.
func NewBresenham(start, end image.Point) *Bresenham {
	o := octantOf(start, end)
	s, e := o.toOctant0(start), o.toOctant0(end)
	dx, dy := e.X-s.X, e.Y-s.Y
	return &Bresenham{x: s.X, y: s.Y, dx: dx, dy: dy, x1: e.X, diff: dy - dx, octant: o}
}

// Next returns the next point. ok is false once the end has been passed.
func (b *Bresenham) Next() (p image.Point, ok bool) {
	if b.x > b.x1 {
		return image.Point{}, false
	}
	p = image.Pt(b.x, b.y)
	if b.diff >= 0 {
		b.y++
		b.diff -= b.dx
	}
	b.diff += b.dy
	b.x++
	return b.octant.fromOctant0(p), true
}

// set writes p at (x, y) if the point is inside img.
func set[P pixel.Pixel](img *pixbuf.Image[P], x, y int, p P) {
	if x >= 0 && y >= 0 && x < img.Width() && y < img.Height() {
		img.SetPixelUnchecked(x, y, p)
	}
}

// Line draws a one pixel wide line from a to b, clipped to img.
func Line[P pixel.Pixel](img *pixbuf.Image[P], a, b image.Point, p P) {
	it := NewBresenham(a, b)
	for pt, ok := it.Next(); ok; pt, ok = it.Next() {
		set(img, pt.X, pt.Y, p)
	}
}
