package pixel

import (
	"math"

	"github.com/gogpu/pixbuf/internal/wide"
)

// Pack packs an RGBA pixel into 0xAARRGGBB.
func Pack(p RGBA) uint32 {
	return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

// Unpack is the inverse of Pack.
func Unpack(n uint32) RGBA {
	// #nosec G115 -- byte extraction
	return RGBA{byte(n >> 16), byte(n >> 8), byte(n), byte(n >> 24)}
}

// PackPixel packs any pixel through its RGBA form.
func PackPixel[P Pixel](p P) uint32 {
	return Pack(ToRGBA(p))
}

// UnpackPixel unpacks 0xAARRGGBB into layout P. The round trip through
// PackPixel is lossy for YA, whose alpha does not survive conversion from RGBA.
func UnpackPixel[P Pixel](n uint32) P {
	return Convert[P](Unpack(n))
}

// magic is the bit pattern of 2^23. Adding a small integer to 2^23 stores it
// verbatim in the float's mantissa.
const (
	magic      = 0x4B000000
	magicFloat = 1 << 23
)

// U8ToF32 maps a byte to [0, 1].
func U8ToF32(x byte) float32 {
	return (math.Float32frombits(uint32(x)^magic) - magicFloat) * (1.0 / 255)
}

// F32ToU8 maps [0, 1] to a byte, rounding to nearest.
// Inputs outside [0, 1] are clamped.
func F32ToU8(f float32) byte {
	f = min(max(f, 0), 1)
	return byte(math.Float32bits(f*255+magicFloat) ^ magic) // #nosec G115 -- low byte holds the value
}

// U8sToF32s normalizes min(len(dst), len(src)) bytes into dst.
func U8sToF32s(dst []float32, src []byte) {
	n := min(len(dst), len(src))
	var (
		bits  = wide.SplatU32(magic)
		bias  = wide.SplatF32(magicFloat)
		scale = wide.SplatF32(1.0 / 255)
	)

	i := 0
	for ; i+wide.F32Lanes <= n; i += wide.F32Lanes {
		wide.WidenU8(src[i:]).Xor(bits).AsF32().Sub(bias).Mul(scale).Store(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = U8ToF32(src[i])
	}
}

// F32sToU8s quantizes min(len(dst), len(src)) floats into dst.
func F32sToU8s(dst []byte, src []float32) {
	n := min(len(dst), len(src))
	var (
		bits  = wide.SplatU32(magic)
		bias  = wide.SplatF32(magicFloat)
		scale = wide.SplatF32(255)
	)

	i := 0
	for ; i+wide.F32Lanes <= n; i += wide.F32Lanes {
		wide.LoadF32(src[i:]).Clamp(0, 1).Mul(scale).Add(bias).Bits().Xor(bits).NarrowU8(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = F32ToU8(src[i])
	}
}
