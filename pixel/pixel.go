// Package pixel defines the fixed-layout pixel types used by pixbuf and the
// per-pixel arithmetic on them: layout conversion, alpha blending, packing
// and byte/float normalization.
//
// A pixel is a byte array whose length is its channel count:
//
//	Y    [1]byte  luma
//	YA   [2]byte  luma, alpha
//	RGB  [3]byte  red, green, blue
//	RGBA [4]byte  red, green, blue, alpha
//
// The channel count is part of the type, so code generic over [Pixel]
// resolves it at compile time.
package pixel

// Y is a single-channel luma pixel.
type Y [1]byte

// YA is a luma pixel with alpha.
type YA [2]byte

// RGB is an opaque color pixel.
type RGB [3]byte

// RGBA is a color pixel with straight (non-premultiplied) alpha.
type RGBA [4]byte

// Pixel is the set of supported pixel layouts.
type Pixel interface {
	Y | YA | RGB | RGBA
}

// Channels returns the channel count (bytes per pixel) of P.
func Channels[P Pixel]() int {
	var p P
	return len(p)
}

// HasAlpha reports whether P carries an alpha channel in its last byte.
func HasAlpha[P Pixel]() bool {
	c := Channels[P]()
	return c == 2 || c == 4
}

// Load reads a P from the first Channels[P]() bytes of b.
func Load[P Pixel](b []byte) P {
	var p P
	b = b[:len(p)]
	for i := range b {
		p[i] = b[i]
	}
	return p
}

// Store writes p into the first Channels[P]() bytes of b.
func Store[P Pixel](b []byte, p P) {
	b = b[:len(p)]
	for i := range b {
		b[i] = p[i]
	}
}

// Alpha returns the alpha of p, or 255 for layouts without alpha.
func Alpha[P Pixel](p P) byte {
	switch v := any(p).(type) {
	case YA:
		return v[1]
	case RGBA:
		return v[3]
	}
	return 255
}
