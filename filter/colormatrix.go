package filter

import (
	"math"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// ColorMatrix is a 4x5 color transform in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are in [0, 255] and the fifth column is a bias.
type ColorMatrix [20]float32

// Rec. 709 luma weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Identity passes colors through unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Brightness scales color: 0 is black, 1 unchanged, 2 twice as bright.
func Brightness(factor float32) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast scales color around mid gray: 0 is flat gray, 1 unchanged.
func Contrast(factor float32) ColorMatrix {
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between luma (0) and the unchanged color (1).
// Factors above 1 oversaturate.
func Saturation(factor float32) ColorMatrix {
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale replaces color with its Rec. 709 luma.
func Grayscale() ColorMatrix {
	return Saturation(0)
}

// Sepia applies a sepia tone.
func Sepia() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Invert inverts color, keeping alpha.
func Invert() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// HueRotate rotates hue by degrees around the luma axis.
func HueRotate(degrees float64) ColorMatrix {
	rad := degrees * math.Pi / 180
	cos := float32(math.Cos(rad))
	sin := float32(math.Sin(rad))

	const (
		r = 0.213
		g = 0.715
		b = 0.072
	)
	return ColorMatrix{
		r + cos*(1-r) + sin*(-r), g + cos*(-g) + sin*(-g), b + cos*(-b) + sin*(1-b), 0, 0,
		r + cos*(-r) + sin*(0.143), g + cos*(1-g) + sin*(0.140), b + cos*(-b) + sin*(-0.283), 0, 0,
		r + cos*(-r) + sin*(-(1 - r)), g + cos*(-g) + sin*(g), b + cos*(1-b) + sin*(b), 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Opacity multiplies alpha by factor.
func Opacity(factor float32) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, factor, 0,
	}
}

// Tint blends every color towards tint by the tint's alpha.
func Tint(tint pixel.RGBA) ColorMatrix {
	f := float32(tint[3]) / 255
	inv := 1 - f
	return ColorMatrix{
		inv, 0, 0, 0, float32(tint[0]) * f,
		0, inv, 0, 0, float32(tint[1]) * f,
		0, 0, inv, 0, float32(tint[2]) * f,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix applying m first and next second.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += next[row*5+k] * m[k*5+col]
			}
			out[row*5+col] = sum
		}
		out[row*5+4] = next[row*5+0]*m[4] + next[row*5+1]*m[9] +
			next[row*5+2]*m[14] + next[row*5+3]*m[19] + next[row*5+4]
	}
	return out
}

// Transform applies m to a single pixel.
func (m ColorMatrix) Transform(p pixel.RGBA) pixel.RGBA {
	r, g, b, a := float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3])
	return pixel.RGBA{
		clampUint8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]),
		clampUint8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]),
		clampUint8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]),
		clampUint8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]),
	}
}

// Apply transforms every pixel of img in place. Luma layouts are expanded
// to RGB for the transform and reduced back to luma. Layouts without alpha
// ignore the alpha row.
func Apply[P pixel.Pixel](img *pixbuf.Image[P], m ColorMatrix) {
	for b := range img.ChunkedMut() {
		rgba := m.Transform(pixel.ToRGBA(pixel.Load[P](b)))
		out := pixel.Convert[P](rgba)
		if pixel.HasAlpha[P]() {
			out[len(out)-1] = rgba[3]
		}
		pixel.Store(b, out)
	}
}
