package drawing

import (
	"image"
	"math"
	"slices"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// Box draws the outline of the rectangle spanning columns x..x+w and rows
// y..y+h, edges included.
func Box[P pixel.Pixel](img *pixbuf.Image[P], x, y, w, h int, p P) {
	for i := max(x, 0); i <= min(x+w, img.Width()-1); i++ {
		set(img, i, y, p)
		set(img, i, y+h, p)
	}
	for j := max(y, 0); j <= min(y+h, img.Height()-1); j++ {
		set(img, x, j, p)
		set(img, x+w, j, p)
	}
}

// FilledBox fills the rectangle spanning columns x..x+w and rows y..y+h,
// edges included.
func FilledBox[P pixel.Pixel](img *pixbuf.Image[P], x, y, w, h int, p P) {
	x0, x1 := max(x, 0), min(x+w, img.Width()-1)
	y0, y1 := max(y, 0), min(y+h, img.Height()-1)
	if x0 > x1 || y0 > y1 {
		return
	}
	c := pixel.Channels[P]()
	for j := y0; j <= y1; j++ {
		row := img.Row(j)[x0*c : (x1+1)*c]
		for i := 0; i < len(row); i += c {
			pixel.Store(row[i:], p)
		}
	}
}

// BorderCircle draws the outline of a circle with the midpoint algorithm.
func BorderCircle[P pixel.Pixel](img *pixbuf.Image[P], center image.Point, r int, p P) {
	cx, cy := center.X, center.Y
	x, y := 0, r
	d := 1 - r
	for x <= y {
		set(img, cx+x, cy+y, p)
		set(img, cx-x, cy+y, p)
		set(img, cx+x, cy-y, p)
		set(img, cx-x, cy-y, p)
		set(img, cx+y, cy+x, p)
		set(img, cx-y, cy+x, p)
		set(img, cx+y, cy-x, p)
		set(img, cx-y, cy-x, p)
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
}

// Circle draws a filled circle covering exactly the pixels BorderCircle
// outlines and everything inside them.
func Circle[P pixel.Pixel](img *pixbuf.Image[P], center image.Point, r int, p P) {
	cx, cy := center.X, center.Y
	x, y := 0, r
	d := 1 - r
	for x <= y {
		span(img, cx-x, cx+x, cy+y, p)
		span(img, cx-x, cx+x, cy-y, p)
		span(img, cx-y, cx+y, cy+x, p)
		span(img, cx-y, cx+y, cy-x, p)
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
}

// span fills row y from x0 to x1 inclusive, clipped to the image.
func span[P pixel.Pixel](img *pixbuf.Image[P], x0, x1, y int, p P) {
	if y < 0 || y >= img.Height() {
		return
	}
	for x := max(x0, 0); x <= min(x1, img.Width()-1); x++ {
		img.SetPixelUnchecked(x, y, p)
	}
}

func edge(a, b, p image.Point) int {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

// Tri draws a filled triangle. Pixels whose centers lie on an edge are
// included.
func Tri[P pixel.Pixel](img *pixbuf.Image[P], a, b, c image.Point, p P) {
	minX := max(min(a.X, b.X, c.X), 0)
	maxX := min(max(a.X, b.X, c.X), img.Width()-1)
	minY := max(min(a.Y, b.Y, c.Y), 0)
	maxY := min(max(a.Y, b.Y, c.Y), img.Height()-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pt := image.Pt(x, y)
			w0, w1, w2 := edge(b, c, pt), edge(c, a, pt), edge(a, b, pt)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				img.SetPixelUnchecked(x, y, p)
			}
		}
	}
}

// Points fills the closed polygon through pts with a scanline fill and then
// strokes its outline. Self-intersecting polygons use the even-odd rule.
func Points[P pixel.Pixel](img *pixbuf.Image[P], pts []image.Point, p P) {
	if len(pts) == 0 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	minY, maxY = max(minY, 0), min(maxY, img.Height()-1)

	var xs []float64
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		fy := float64(y) + 0.5
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
			if fy < float64(lo) || fy >= float64(hi) {
				continue
			}
			t := (fy - float64(a.Y)) / float64(b.Y-a.Y)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Ceil(xs[i]-0.5)), 0)
			x1 := min(int(math.Floor(xs[i+1]-0.5)), img.Width()-1)
			for x := x0; x <= x1; x++ {
				img.SetPixelUnchecked(x, y, p)
			}
		}
	}

	for i, a := range pts {
		Line(img, a, pts[(i+1)%len(pts)], p)
	}
}

// Quad draws a filled quadrilateral with corners a, b, c, d in order.
func Quad[P pixel.Pixel](img *pixbuf.Image[P], a, b, c, d image.Point, p P) {
	Points(img, []image.Point{a, b, c, d}, p)
}

// polygon returns the vertices of a regular polygon. rotation is in radians;
// zero puts the first vertex straight above the center.
func polygon(center image.Point, radius float64, sides int, rotation float64) []image.Point {
	pts := make([]image.Point, sides)
	for i := range pts {
		angle := rotation + 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		pts[i] = image.Pt(
			center.X+int(math.Round(radius*math.Cos(angle))),
			center.Y+int(math.Round(radius*math.Sin(angle))),
		)
	}
	return pts
}

// Poly draws a filled regular polygon. Fewer than 3 sides draws nothing.
func Poly[P pixel.Pixel](img *pixbuf.Image[P], center image.Point, radius float64, sides int, rotation float64, p P) {
	if sides < 3 {
		return
	}
	Points(img, polygon(center, radius, sides, rotation), p)
}

// BorderPoly draws the outline of a regular polygon.
func BorderPoly[P pixel.Pixel](img *pixbuf.Image[P], center image.Point, radius float64, sides int, rotation float64, p P) {
	if sides < 3 {
		return
	}
	pts := polygon(center, radius, sides, rotation)
	for i, a := range pts {
		Line(img, a, pts[(i+1)%len(pts)], p)
	}
}
