package scale

import (
	"math"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// Interpolation selects the kernel used by [Sample] and [Sampled].
type Interpolation uint8

const (
	// InterpNearest selects the closest pixel.
	InterpNearest Interpolation = iota

	// InterpBilinear blends the 4 neighboring pixels linearly.
	InterpBilinear

	// InterpBicubic uses Catmull-Rom weights over a 4x4 neighborhood.
	InterpBicubic
)

// String returns the interpolation name.
func (m Interpolation) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Sample samples src at normalized coordinates (u, v), where (0, 0) is the
// top-left corner and (1, 1) the bottom-right. Coordinates outside the image
// are clamped to the edge. Every channel, alpha included, is interpolated
// independently.
func Sample[P pixel.Pixel](src pixbuf.View[P], u, v float64, mode Interpolation) P {
	switch mode {
	case InterpBilinear:
		return sampleBilinear(src, u, v)
	case InterpBicubic:
		return sampleBicubic(src, u, v)
	default:
		return sampleNearest(src, u, v)
	}
}

// Sampled resamples src to width x height by sampling every destination
// pixel center with mode.
func Sampled[P pixel.Pixel](src pixbuf.View[P], width, height int, mode Interpolation) (*pixbuf.Image[P], error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	dst := pixbuf.Alloc[P](width, height)
	for y := range height {
		v := (float64(y) + 0.5) / float64(height)
		for x := range width {
			u := (float64(x) + 0.5) / float64(width)
			dst.SetPixelUnchecked(x, y, Sample(src, u, v, mode))
		}
	}
	return dst, nil
}

func sampleNearest[P pixel.Pixel](src pixbuf.View[P], u, v float64) P {
	w, h := src.Width(), src.Height()
	x := clamp(int(math.Floor(u*float64(w))), w-1)
	y := clamp(int(math.Floor(v*float64(h))), h-1)
	return src.PixelUnchecked(x, y)
}

func sampleBilinear[P pixel.Pixel](src pixbuf.View[P], u, v float64) P {
	w, h := src.Width(), src.Height()

	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1, y1 := clamp(x0+1, w-1), clamp(y0+1, h-1)
	x0, y0 = clamp(x0, w-1), clamp(y0, h-1)

	p00 := src.PixelUnchecked(x0, y0)
	p10 := src.PixelUnchecked(x1, y0)
	p01 := src.PixelUnchecked(x0, y1)
	p11 := src.PixelUnchecked(x1, y1)

	var out P
	for i := range len(out) {
		out[i] = toByte(lerp2D(float64(p00[i]), float64(p10[i]), float64(p01[i]), float64(p11[i]), tx, ty))
	}
	return out
}

func sampleBicubic[P pixel.Pixel](src pixbuf.View[P], u, v float64) P {
	w, h := src.Width(), src.Height()

	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	wx := cubicWeights(tx)
	wy := cubicWeights(ty)

	var acc [4]float64
	for dy := range 4 {
		py := clamp(y+dy-1, h-1)
		for dx := range 4 {
			p := src.PixelUnchecked(clamp(x+dx-1, w-1), py)
			wt := wx[dx] * wy[dy]
			for i := range len(p) {
				acc[i] += float64(p[i]) * wt
			}
		}
	}

	var out P
	for i := range len(out) {
		out[i] = toByte(acc[i])
	}
	return out
}

// clamp clamps val to [0, hi].
func clamp(val, hi int) int {
	return max(0, min(val, hi))
}

// toByte rounds v to the nearest byte, saturating.
func toByte(v float64) byte {
	return byte(max(0, min(v, 255)) + 0.5)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D interpolates bilinearly on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

// cubicWeight is the Catmull-Rom kernel (Mitchell-Netravali, B=0, C=0.5).
func cubicWeight(t float64) float64 {
	t = math.Abs(t)
	if t < 1 {
		return 1.5*t*t*t - 2.5*t*t + 1.0
	}
	if t < 2 {
		return -0.5*t*t*t + 2.5*t*t - 4.0*t + 2.0
	}
	return 0
}

// cubicWeights returns the weights of the samples at offsets -1, 0, 1 and 2
// from the pixel left of (or above) the fractional position t.
func cubicWeights(t float64) [4]float64 {
	return [4]float64{
		cubicWeight(t + 1),
		cubicWeight(t),
		cubicWeight(t - 1),
		cubicWeight(t - 2),
	}
}
