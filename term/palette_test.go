package term

import (
	"bytes"
	"testing"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

func TestMedianCut_Exact(t *testing.T) {
	pixels := []pixel.RGB{{0, 0, 255}, {255, 0, 0}, {0, 0, 255}, {0, 255, 0}}
	p := MedianCut(pixels, 8)
	want := []pixel.RGB{{0, 0, 255}, {0, 255, 0}, {255, 0, 0}}
	if p.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", p.Len(), len(want))
	}
	for i, c := range want {
		if p.Color(i) != c {
			t.Errorf("Color(%d) = %v, want %v", i, p.Color(i), c)
		}
		if got := p.Index(c); got != i {
			t.Errorf("Index(%v) = %d, want %d", c, got, i)
		}
	}
}

func TestMedianCut_Reduces(t *testing.T) {
	var pixels []pixel.RGB
	for v := range 64 {
		pixels = append(pixels, pixel.RGB{byte(v * 4), byte(v * 4), byte(v * 4)})
	}
	p := MedianCut(pixels, 4)
	if p.Len() != 4 {
		t.Fatalf("Len = %d, want 4", p.Len())
	}
	for i := 1; i < p.Len(); i++ {
		if p.Color(i)[0] <= p.Color(i - 1)[0] {
			t.Errorf("palette not ordered: %v", p.colors)
		}
	}
	// Every gray maps to a palette entry within one box width.
	for _, c := range pixels {
		got := p.Color(p.Index(c))
		if d := int(got[0]) - int(c[0]); d > 64 || d < -64 {
			t.Errorf("%v mapped to %v", c, got)
		}
	}
}

func TestMedianCut_WeightedMedian(t *testing.T) {
	// The rare bright color keeps its own entry and the common dark ones
	// are merged by their weighted mean.
	var pixels []pixel.RGB
	for range 100 {
		pixels = append(pixels, pixel.RGB{0, 0, 0}, pixel.RGB{10, 10, 10})
	}
	pixels = append(pixels, pixel.RGB{250, 250, 250})
	p := MedianCut(pixels, 2)
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	if p.Color(0) != (pixel.RGB{5, 5, 5}) || p.Color(1) != (pixel.RGB{250, 250, 250}) {
		t.Errorf("palette = %v, want [5 5 5] [250 250 250]", p.colors)
	}
}

func TestPalette_IndexNearestLab(t *testing.T) {
	p := NewPalette([]pixel.RGB{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}})
	tests := []struct {
		in   pixel.RGB
		want int
	}{
		{pixel.RGB{20, 20, 20}, 0},
		{pixel.RGB{240, 240, 230}, 1},
		{pixel.RGB{200, 30, 30}, 2},
	}
	for _, tt := range tests {
		if got := p.Index(tt.in); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.in, got, tt.want)
		}
		// Cached lookups agree.
		if got := p.Index(tt.in); got != tt.want {
			t.Errorf("cached Index(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestQuantize(t *testing.T) {
	src := pixbuf.ViewOf[pixel.RGBA](4, 1, []byte{
		200, 0, 0, 255,
		0, 0, 200, 10,
		200, 0, 0, 0,
		0, 0, 200, 255,
	})
	ix := Quantize(src, 16)
	if n := len(ix.Palette()); n != 2 {
		t.Fatalf("palette of %d colors, want 2", n)
	}
	got := ix.Expand()
	want := []byte{200, 0, 0, 0, 0, 200, 200, 0, 0, 0, 0, 200}
	if !bytes.Equal(got.Bytes(), want) {
		t.Errorf("Expand = %v, want %v", got.Bytes(), want)
	}

	if one := Quantize(src, 0); len(one.Palette()) != 1 {
		t.Errorf("colors 0 gave %d palette entries, want 1", len(one.Palette()))
	}
}
