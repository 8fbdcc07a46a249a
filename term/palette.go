package term

import (
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/pixbuf/pixel"
)

// Palette is an indexed set of colors with nearest-color lookup in CIE Lab
// space. It is not safe for concurrent use.
type Palette struct {
	colors []pixel.RGB
	lab    [][3]float64
	cache  map[pixel.RGB]int
}

// colorCount is a distinct color and the number of pixels that use it.
type colorCount struct {
	c pixel.RGB
	n int
}

// box is a median-cut partition of the color histogram.
type box []colorCount

// MedianCut builds a palette of at most n colors for pixels. When pixels
// use n colors or fewer the palette holds exactly those colors. Otherwise
// the color histogram is split at the weighted median of its widest channel
// until there are n boxes, and each box contributes its weighted mean.
//
// Palette entries are ordered by their packed 0xRRGGBB value.
func MedianCut(pixels []pixel.RGB, n int) *Palette {
	n = max(1, n)
	hist := make(map[pixel.RGB]int)
	for _, c := range pixels {
		hist[c]++
	}
	all := make(box, 0, len(hist))
	for c, cnt := range hist {
		all = append(all, colorCount{c, cnt})
	}
	slices.SortFunc(all, func(a, b colorCount) int { return packRGB(a.c) - packRGB(b.c) })

	var colors []pixel.RGB
	if len(all) <= n {
		colors = make([]pixel.RGB, len(all))
		for i, cc := range all {
			colors[i] = cc.c
		}
	} else {
		boxes := []box{all}
		for len(boxes) < n {
			i := widestBox(boxes)
			if i < 0 {
				break
			}
			lo, hi := boxes[i].split()
			boxes[i] = lo
			boxes = append(boxes, hi)
		}
		colors = make([]pixel.RGB, 0, len(boxes))
		for _, b := range boxes {
			colors = append(colors, b.mean())
		}
		slices.SortFunc(colors, func(a, b pixel.RGB) int { return packRGB(a) - packRGB(b) })
		colors = slices.Compact(colors)
	}
	return NewPalette(colors)
}

// NewPalette returns a palette with the given colors in order.
func NewPalette(colors []pixel.RGB) *Palette {
	p := &Palette{
		colors: colors,
		lab:    make([][3]float64, len(colors)),
		cache:  make(map[pixel.RGB]int),
	}
	for i, c := range colors {
		p.lab[i] = toLab(c)
	}
	return p
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }

// Color returns the color at index i.
func (p *Palette) Color(i int) pixel.RGB { return p.colors[i] }

// Index returns the index of the palette color closest to c.
func (p *Palette) Index(c pixel.RGB) int {
	if i, ok := p.cache[c]; ok {
		return i
	}
	l := toLab(c)
	best, bestDist := 0, -1.0
	for i, e := range p.lab {
		d0, d1, d2 := l[0]-e[0], l[1]-e[1], l[2]-e[2]
		d := d0*d0 + d1*d1 + d2*d2
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	p.cache[c] = best
	return best
}

func toLab(c pixel.RGB) [3]float64 {
	l, a, b := colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}.Lab()
	return [3]float64{l, a, b}
}

func packRGB(c pixel.RGB) int {
	return int(c[0])<<16 | int(c[1])<<8 | int(c[2])
}

// widestBox returns the index of the splittable box with the largest
// channel range, or -1 when every box holds a single color.
func widestBox(boxes []box) int {
	best, bestRange := -1, -1
	for i, b := range boxes {
		if len(b) < 2 {
			continue
		}
		if _, r := b.widest(); r > bestRange {
			best, bestRange = i, r
		}
	}
	return best
}

// widest returns the channel with the largest value range and that range.
func (b box) widest() (channel, spread int) {
	lo := [3]int{255, 255, 255}
	var hi [3]int
	for _, cc := range b {
		for ch := range 3 {
			v := int(cc.c[ch])
			lo[ch] = min(lo[ch], v)
			hi[ch] = max(hi[ch], v)
		}
	}
	for ch := range 3 {
		if r := hi[ch] - lo[ch]; r > spread || ch == 0 {
			channel, spread = ch, r
		}
	}
	return channel, spread
}

// split sorts b along its widest channel and cuts it at the pixel-weighted
// median. Both halves are non-empty.
func (b box) split() (box, box) {
	ch, _ := b.widest()
	slices.SortFunc(b, func(x, y colorCount) int {
		if d := int(x.c[ch]) - int(y.c[ch]); d != 0 {
			return d
		}
		return packRGB(x.c) - packRGB(y.c)
	})
	total := 0
	for _, cc := range b {
		total += cc.n
	}
	cut, acc := 1, 0
	for i, cc := range b[:len(b)-1] {
		acc += cc.n
		cut = i + 1
		if 2*acc >= total {
			break
		}
	}
	return b[:cut:cut], b[cut:]
}

// mean returns the pixel-weighted mean color of b.
func (b box) mean() pixel.RGB {
	var sum [3]int
	total := 0
	for _, cc := range b {
		for ch := range 3 {
			sum[ch] += int(cc.c[ch]) * cc.n
		}
		total += cc.n
	}
	var out pixel.RGB
	for ch := range 3 {
		out[ch] = byte((sum[ch] + total/2) / total) // #nosec G115 -- mean of bytes
	}
	return out
}
