package scale

import (
	"math"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// Half returns src downscaled to half its size with a 2x2 box filter.
// Odd trailing rows and columns are averaged with themselves, and neither
// dimension drops below 1.
func Half[P pixel.Pixel](src pixbuf.View[P]) *pixbuf.Image[P] {
	sw, sh := src.Width(), src.Height()
	dw, dh := max(1, sw/2), max(1, sh/2)
	dst := pixbuf.Alloc[P](dw, dh)

	for dy := range dh {
		sy0 := dy * 2
		sy1 := min(sy0+1, sh-1)
		for dx := range dw {
			sx0 := dx * 2
			sx1 := min(sx0+1, sw-1)

			p0 := src.PixelUnchecked(sx0, sy0)
			p1 := src.PixelUnchecked(sx1, sy0)
			p2 := src.PixelUnchecked(sx0, sy1)
			p3 := src.PixelUnchecked(sx1, sy1)

			var out P
			for i := range len(out) {
				out[i] = byte((uint16(p0[i]) + uint16(p1[i]) + uint16(p2[i]) + uint16(p3[i])) / 4) // #nosec G115 -- average of bytes
			}
			dst.SetPixelUnchecked(dx, dy, out)
		}
	}
	return dst
}

// MipmapChain holds successively halved versions of an image. Level 0 is
// the source and the last level is 1 pixel along its longer side.
type MipmapChain[P pixel.Pixel] struct {
	levels []*pixbuf.Image[P]
}

// Mipmaps builds the mipmap chain of src. Level 0 is src itself, not a copy.
func Mipmaps[P pixel.Pixel](src *pixbuf.Image[P]) *MipmapChain[P] {
	n := 1 + int(math.Floor(math.Log2(float64(max(src.Width(), src.Height())))))
	chain := &MipmapChain[P]{levels: make([]*pixbuf.Image[P], n)}
	chain.levels[0] = src
	for i := 1; i < n; i++ {
		chain.levels[i] = Half(chain.levels[i-1].View())
	}
	return chain
}

// Level returns level n, or nil when n is out of range.
func (m *MipmapChain[P]) Level(n int) *pixbuf.Image[P] {
	if m == nil || n < 0 || n >= len(m.levels) {
		return nil
	}
	return m.levels[n]
}

// NumLevels returns the number of levels in the chain.
func (m *MipmapChain[P]) NumLevels() int {
	if m == nil {
		return 0
	}
	return len(m.levels)
}

// LevelForScale returns the level to sample when drawing at scale, the
// ratio of displayed to source size: floor(-log2(scale)), clamped.
func (m *MipmapChain[P]) LevelForScale(scale float64) *pixbuf.Image[P] {
	if m == nil || len(m.levels) == 0 {
		return nil
	}
	if scale >= 1.0 {
		return m.levels[0]
	}
	level := max(0, min(int(math.Floor(-math.Log2(scale))), len(m.levels)-1))
	return m.levels[level]
}
