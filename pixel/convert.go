package pixel

// Luma returns the Rec. 709 luma of an RGB triple in integer arithmetic.
func Luma(c RGB) Y {
	l := (2126*uint32(c[0]) + 7152*uint32(c[1]) + 722*uint32(c[2])) / 10000
	return Y{byte(l)} // #nosec G115 -- weights sum to 10000, l <= 255
}

// ToY converts any pixel to luma. Alpha is discarded.
func ToY[F Pixel](f F) Y {
	switch v := any(f).(type) {
	case Y:
		return v
	case YA:
		return Y{v[0]}
	case RGB:
		return Luma(v)
	case RGBA:
		return Luma(RGB{v[0], v[1], v[2]})
	}
	panic("unreachable")
}

// ToYA converts any pixel to luma with alpha.
// Every source other than YA yields an opaque result, RGBA included.
func ToYA[F Pixel](f F) YA {
	switch v := any(f).(type) {
	case Y:
		return YA{v[0], 255}
	case YA:
		return v
	case RGB:
		return YA{Luma(v)[0], 255}
	case RGBA:
		return YA{Luma(RGB{v[0], v[1], v[2]})[0], 255}
	}
	panic("unreachable")
}

// ToRGB converts any pixel to opaque RGB. Luma is replicated and alpha is
// discarded.
func ToRGB[F Pixel](f F) RGB {
	switch v := any(f).(type) {
	case Y:
		return RGB{v[0], v[0], v[0]}
	case YA:
		return RGB{v[0], v[0], v[0]}
	case RGB:
		return v
	case RGBA:
		return RGB{v[0], v[1], v[2]}
	}
	panic("unreachable")
}

// ToRGBA converts any pixel to RGBA, using alpha 255 where the source has none.
func ToRGBA[F Pixel](f F) RGBA {
	switch v := any(f).(type) {
	case Y:
		return RGBA{v[0], v[0], v[0], 255}
	case YA:
		return RGBA{v[0], v[0], v[0], v[1]}
	case RGB:
		return RGBA{v[0], v[1], v[2], 255}
	case RGBA:
		return v
	}
	panic("unreachable")
}

// Convert converts a pixel of layout F to layout T.
func Convert[T, F Pixel](f F) T {
	var t T
	switch p := any(&t).(type) {
	case *Y:
		*p = ToY(f)
	case *YA:
		*p = ToYA(f)
	case *RGB:
		*p = ToRGB(f)
	case *RGBA:
		*p = ToRGBA(f)
	}
	return t
}
