package wide

import "math"

// U32x8 represents 8 uint32 values. It is mostly used to manipulate the
// bit patterns of F32x8 lanes.
type U32x8 [F32Lanes]uint32

// SplatU32 creates U32x8 with all elements set to n.
func SplatU32(n uint32) U32x8 {
	var result U32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// WidenU8 zero-extends the first 8 bytes of b into U32x8.
// Panics if len(b) < 8.
func WidenU8(b []byte) U32x8 {
	var result U32x8
	b = b[:F32Lanes]
	for i := range result {
		result[i] = uint32(b[i])
	}
	return result
}

// NarrowU8 stores the low byte of every lane into the first 8 bytes of b.
// Panics if len(b) < 8.
func (v U32x8) NarrowU8(b []byte) {
	b = b[:F32Lanes]
	for i := range v {
		b[i] = uint8(v[i]) // #nosec G115 -- truncation to the low byte is intended
	}
}

// Xor performs element-wise bitwise XOR.
func (v U32x8) Xor(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] ^ other[i]
	}
	return result
}

// AsF32 reinterprets every lane as an IEEE 754 float32 bit pattern.
func (v U32x8) AsF32() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = math.Float32frombits(v[i])
	}
	return result
}
