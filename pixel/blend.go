package pixel

// Float maps a channel byte to [0, 1].
func Float(n byte) float32 {
	return float32(n) / 255
}

// Unfloat maps [0, 1] back to a channel byte, truncating.
func Unfloat(n float32) byte {
	return byte(255 * n)
}

// Weigh returns the weighted sum l*a + r*b of two channel values, clamped to
// the channel range.
func Weigh(a, b byte, l, r float32) byte {
	// explicit conversions keep the products from fusing into an FMA
	v := float32(Float(a)*l) + float32(Float(b)*r)
	return Unfloat(min(max(v, 0), 1))
}

// Lerp moves b towards f by a/256 in integer arithmetic.
func Lerp(b, f, a byte) byte {
	v := (int(f)-int(b))*int(a)/256 + int(b)
	return byte(v) // #nosec G115 -- v lies between b and f
}

// BlendAlphaAndColor paints color onto dst with coverage a.
// Zero coverage leaves dst untouched and full coverage replaces it.
func BlendAlphaAndColor(a byte, color RGB, dst *RGB) {
	switch a {
	case 0:
		return
	case 255:
		*dst = color
		return
	}
	for i := range dst {
		dst[i] = Lerp(dst[i], color[i], a)
	}
}

// BlendRGBA composites fg over bg with the "over" operator.
// Fully transparent foregrounds are a no-op and fully opaque ones overwrite.
func BlendRGBA(bg *RGBA, fg RGBA) {
	switch fg[3] {
	case 0:
		return
	case 255:
		*bg = fg
		return
	}

	bgA, fgA := Float(bg[3]), Float(fg[3])
	a := bgA + fgA*(1-bgA)
	for i := range 3 {
		bg[i] = Unfloat((Float(fg[i])*fgA + Float(bg[i])*bgA*(1-fgA)) / a)
	}
	bg[3] = Unfloat(a)
}

// BlendYA composites fg over bg with the "over" operator.
func BlendYA(bg *YA, fg YA) {
	switch fg[1] {
	case 0:
		return
	case 255:
		*bg = fg
		return
	}

	// bgA + fgA*(1-bgA) stays exactly 1 over an opaque background
	bgA, fgA := Float(bg[1]), Float(fg[1])
	a := bgA + fgA*(1-bgA)
	bg[0] = Unfloat((Float(fg[0])*fgA + Float(bg[0])*bgA*(1-fgA)) / a)
	bg[1] = Unfloat(a)
}

// BlendRGBOverRGBA composites fg over an opaque bg.
func BlendRGBOverRGBA(bg *RGB, fg RGBA) {
	c := RGBA{bg[0], bg[1], bg[2], 255}
	BlendRGBA(&c, fg)
	*bg = RGB{c[0], c[1], c[2]}
}

func replace[P Pixel](bg *P, fg P) { *bg = fg }

// Blender returns the blend function for painting S onto D.
// The supported pairs are RGBA onto RGBA, RGBA onto RGB, YA onto YA, and
// the plain copies RGB onto RGB and Y onto Y. For any other pair ok is false.
func Blender[D, S Pixel]() (blend func(*D, S), ok bool) {
	var (
		d D
		s S
		f any
	)
	switch any(d).(type) {
	case RGBA:
		if _, isRGBA := any(s).(RGBA); isRGBA {
			f = BlendRGBA
		}
	case RGB:
		switch any(s).(type) {
		case RGBA:
			f = BlendRGBOverRGBA
		case RGB:
			f = replace[RGB]
		}
	case YA:
		if _, isYA := any(s).(YA); isYA {
			f = BlendYA
		}
	case Y:
		if _, isY := any(s).(Y); isY {
			f = replace[Y]
		}
	}
	blend, ok = f.(func(*D, S))
	return blend, ok
}

// Blend paints src onto dst and reports whether the pair is supported.
func Blend[D, S Pixel](dst *D, src S) bool {
	blend, ok := Blender[D, S]()
	if ok {
		blend(dst, src)
	}
	return ok
}
