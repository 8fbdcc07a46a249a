package drawing

import (
	"errors"
	"image"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

func collect(b *Bresenham) []image.Point {
	var pts []image.Point
	for p, ok := b.Next(); ok; p, ok = b.Next() {
		pts = append(pts, p)
	}
	return pts
}

func TestBresenham(t *testing.T) {
	tests := []struct {
		name       string
		start, end image.Point
		want       []image.Point
	}{
		{
			"wp example", image.Pt(0, 1), image.Pt(6, 4),
			[]image.Point{{0, 1}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {5, 3}, {6, 4}},
		},
		{
			"inverse", image.Pt(6, 4), image.Pt(0, 1),
			[]image.Point{{6, 4}, {5, 4}, {4, 3}, {3, 3}, {2, 2}, {1, 2}, {0, 1}},
		},
		{
			"straight y", image.Pt(2, 3), image.Pt(2, 6),
			[]image.Point{{2, 3}, {2, 4}, {2, 5}, {2, 6}},
		},
		{
			"straight x", image.Pt(2, 3), image.Pt(5, 3),
			[]image.Point{{2, 3}, {3, 3}, {4, 3}, {5, 3}},
		},
		{
			"single point", image.Pt(1, 1), image.Pt(1, 1),
			[]image.Point{{1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewBresenham(tt.start, tt.end))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBresenham_AllOctantsReachEnd(t *testing.T) {
	center := image.Pt(10, 10)
	for _, end := range []image.Point{
		{17, 12}, {12, 17}, {8, 17}, {3, 12}, {3, 8}, {8, 3}, {12, 3}, {17, 8},
	} {
		pts := collect(NewBresenham(center, end))
		if pts[0] != center || pts[len(pts)-1] != end {
			t.Errorf("line to %v: endpoints %v..%v", end, pts[0], pts[len(pts)-1])
		}
		dx, dy := end.X-center.X, end.Y-center.Y
		want := max(abs(dx), abs(dy)) + 1
		if len(pts) != want {
			t.Errorf("line to %v: %d points, want %d", end, len(pts), want)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// render draws onto a w x h gray image and returns it as rows of '#'/'.'.
func render(w, h int, draw func(*pixbuf.Image[pixel.Y])) string {
	img := pixbuf.Alloc[pixel.Y](w, h)
	draw(img)
	var sb strings.Builder
	for y := range h {
		for _, b := range img.Row(y) {
			if b != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var white = pixel.Y{255}

func TestLine(t *testing.T) {
	got := render(5, 5, func(img *pixbuf.Image[pixel.Y]) {
		Line(img, image.Pt(0, 1), image.Pt(6, 4), white)
	})
	want := "" +
		".....\n" +
		"##...\n" +
		"..##.\n" +
		"....#\n" +
		".....\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestBox(t *testing.T) {
	got := render(5, 4, func(img *pixbuf.Image[pixel.Y]) {
		Box(img, 1, 0, 2, 2, white)
	})
	want := "" +
		".###.\n" +
		".#.#.\n" +
		".###.\n" +
		".....\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestBox_Clipped(t *testing.T) {
	got := render(4, 3, func(img *pixbuf.Image[pixel.Y]) {
		Box(img, -1, 1, 3, 5, white)
		Box(img, math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32, white)
	})
	want := "" +
		"....\n" +
		"###.\n" +
		"..#.\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestFilledBox(t *testing.T) {
	got := render(4, 3, func(img *pixbuf.Image[pixel.Y]) {
		FilledBox(img, 2, 1, 5, 5, white)
		FilledBox(img, -9, -9, 2, 2, white)
	})
	want := "" +
		"....\n" +
		"..##\n" +
		"..##\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestCircles(t *testing.T) {
	border := render(7, 7, func(img *pixbuf.Image[pixel.Y]) {
		BorderCircle(img, image.Pt(3, 3), 2, white)
	})
	wantBorder := "" +
		".......\n" +
		"..###..\n" +
		".#...#.\n" +
		".#...#.\n" +
		".#...#.\n" +
		"..###..\n" +
		".......\n"
	if border != wantBorder {
		t.Errorf("BorderCircle got\n%s\nwant\n%s", border, wantBorder)
	}

	filled := render(7, 7, func(img *pixbuf.Image[pixel.Y]) {
		Circle(img, image.Pt(3, 3), 2, white)
	})
	wantFilled := "" +
		".......\n" +
		"..###..\n" +
		".#####.\n" +
		".#####.\n" +
		".#####.\n" +
		"..###..\n" +
		".......\n"
	if filled != wantFilled {
		t.Errorf("Circle got\n%s\nwant\n%s", filled, wantFilled)
	}

	// Clipped at the corner without panicking.
	render(3, 3, func(img *pixbuf.Image[pixel.Y]) {
		Circle(img, image.Pt(0, 0), 5, white)
		BorderCircle(img, image.Pt(0, 0), 5, white)
	})
}

func TestTri(t *testing.T) {
	got := render(5, 5, func(img *pixbuf.Image[pixel.Y]) {
		Tri(img, image.Pt(0, 0), image.Pt(4, 0), image.Pt(0, 4), white)
	})
	want := "" +
		"#####\n" +
		"####.\n" +
		"###..\n" +
		"##...\n" +
		"#....\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	// Winding order does not matter.
	rev := render(5, 5, func(img *pixbuf.Image[pixel.Y]) {
		Tri(img, image.Pt(0, 4), image.Pt(4, 0), image.Pt(0, 0), white)
	})
	if rev != want {
		t.Errorf("reversed winding got\n%s", rev)
	}
}

func TestQuad(t *testing.T) {
	got := render(6, 5, func(img *pixbuf.Image[pixel.Y]) {
		Quad(img, image.Pt(1, 1), image.Pt(4, 1), image.Pt(4, 3), image.Pt(1, 3), white)
	})
	want := "" +
		"......\n" +
		".####.\n" +
		".####.\n" +
		".####.\n" +
		"......\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestPoly(t *testing.T) {
	img := pixbuf.Alloc[pixel.RGB](21, 21)
	red := pixel.RGB{255, 0, 0}
	Poly(img, image.Pt(10, 10), 8, 6, 0, red)

	if p := img.PixelUnchecked(10, 10); p != red {
		t.Errorf("center = %v, want filled", p)
	}
	if p := img.PixelUnchecked(10, 2); p != red {
		t.Errorf("top vertex = %v, want filled", p)
	}
	if p := img.PixelUnchecked(0, 0); p != (pixel.RGB{}) {
		t.Errorf("corner = %v, want untouched", p)
	}

	outline := pixbuf.Alloc[pixel.RGB](21, 21)
	BorderPoly(outline, image.Pt(10, 10), 8, 4, 0, red)
	if p := outline.PixelUnchecked(10, 10); p != (pixel.RGB{}) {
		t.Errorf("BorderPoly center = %v, want empty", p)
	}
	if p := outline.PixelUnchecked(10, 2); p != red {
		t.Errorf("BorderPoly vertex = %v, want drawn", p)
	}

	none := pixbuf.Alloc[pixel.RGB](4, 4)
	Poly(none, image.Pt(2, 2), 2, 2, 0, red)
	for p := range none.Chunked() {
		if p != (pixel.RGB{}) {
			t.Fatal("a two-sided polygon must draw nothing")
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want pixel.RGBA
		err  bool
	}{
		{"#ff8000", pixel.RGBA{255, 128, 0, 255}, false},
		{"00ff00", pixel.RGBA{0, 255, 0, 255}, false},
		{"#fff", pixel.RGBA{255, 255, 255, 255}, false},
		{"#10203040", pixel.RGBA{16, 32, 48, 64}, false},
		{"White", pixel.RGBA{255, 255, 255, 255}, false},
		{"transparent", pixel.RGBA{}, false},
		{"#zzzzzz", pixel.RGBA{}, true},
		{"#1020304g", pixel.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.err {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("error = %v, want ErrInvalidColor", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseColor(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
			}
		})
	}
}
