package pixbuf

import "github.com/gogpu/pixbuf/internal/wide"

// AlphaThreshold is the minimum source alpha at which a hard-cutoff overlay
// writes a pixel.
const AlphaThreshold = 128

var (
	threshold = wide.SplatU8(AlphaThreshold)

	// RGBA source lanes gathered into 4 packed RGB pixels.
	rgbLanes = wide.U8x16{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14, 0, 0, 0, 0}

	// Alpha of each source pixel broadcast over its 3 RGB lanes.
	rgbAlphaLanes = wide.U8x16{3, 3, 3, 7, 7, 7, 11, 11, 11, 15, 15, 15, 0, 0, 0, 0}

	// Alpha of each source pixel broadcast over its 4 RGBA lanes.
	rgbaAlphaLanes = wide.U8x16{3, 3, 3, 3, 7, 7, 7, 7, 11, 11, 11, 11, 15, 15, 15, 15}

	// Only the first 12 lanes of an RGB store hold new pixels.
	rgbStoreMask = wide.U8x16{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0, 0, 0, 0,
	}
)

// blit overlays a row of RGBA pixels onto a row of RGB pixels, writing each
// source pixel whose alpha reaches AlphaThreshold.
//
// Each vector step consumes 4 source pixels (16 bytes) and writes 4
// destination pixels (12 bytes); the 4 trailing bytes of the 16-byte store
// are written back unchanged.
func blit(dst, src []byte) {
	i, j := 0, 0
	for ; i+wide.U8Lanes <= len(dst) && j+wide.U8Lanes <= len(src); i, j = i+12, j+16 {
		old := wide.LoadU8(dst[i:])
		s := wide.LoadU8(src[j:])
		mask := s.GreaterEqual(threshold).Swizzle(rgbAlphaLanes).And(rgbStoreMask)
		s.Swizzle(rgbLanes).And(mask).Or(old.AndNot(mask)).Store(dst[i:])
	}
	blitScalar(dst[i:], src[j:])
}

func blitScalar(dst, src []byte) {
	for i, j := 0, 0; i+3 <= len(dst) && j+4 <= len(src); i, j = i+3, j+4 {
		if src[j+3] >= AlphaThreshold {
			copy(dst[i:i+3], src[j:j+3])
		}
	}
}

// blitRGBA overlays a row of RGBA pixels onto a row of RGBA pixels.
func blitRGBA(dst, src []byte) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+wide.U8Lanes <= n; i += wide.U8Lanes {
		old := wide.LoadU8(dst[i:])
		s := wide.LoadU8(src[i:])
		mask := s.GreaterEqual(threshold).Swizzle(rgbaAlphaLanes)
		s.And(mask).Or(old.AndNot(mask)).Store(dst[i:])
	}
	blitRGBAScalar(dst[i:n], src[i:n])
}

func blitRGBAScalar(dst, src []byte) {
	for i := 0; i+4 <= len(dst) && i+4 <= len(src); i += 4 {
		if src[i+3] >= AlphaThreshold {
			copy(dst[i:i+4], src[i:i+4])
		}
	}
}
