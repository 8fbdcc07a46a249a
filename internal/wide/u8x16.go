package wide

// U8Lanes is the number of byte lanes in a U8x16 vector.
const U8Lanes = 16

// U8x16 represents 16 bytes for SIMD-style mask and select operations.
type U8x16 [U8Lanes]uint8

// SplatU8 creates U8x16 with all lanes set to n.
func SplatU8(n uint8) U8x16 {
	var result U8x16
	for i := range result {
		result[i] = n
	}
	return result
}

// LoadU8 reads the first 16 bytes of b.
// Panics if len(b) < 16.
func LoadU8(b []byte) U8x16 {
	var result U8x16
	copy(result[:], b[:U8Lanes])
	return result
}

// Store writes all 16 lanes to the first 16 bytes of b.
// Panics if len(b) < 16.
func (v U8x16) Store(b []byte) {
	copy(b[:U8Lanes], v[:])
}

// GreaterEqual returns a mask with 0xFF in every lane where v[i] >= other[i]
// and 0x00 elsewhere.
func (v U8x16) GreaterEqual(other U8x16) U8x16 {
	var result U8x16
	for i := range v {
		if v[i] >= other[i] {
			result[i] = 0xFF
		}
	}
	return result
}

// Swizzle returns a vector whose lane i is v[idx[i]].
// Only the low four bits of each index are used.
func (v U8x16) Swizzle(idx U8x16) U8x16 {
	var result U8x16
	for i := range idx {
		result[i] = v[idx[i]&(U8Lanes-1)]
	}
	return result
}

// And performs lane-wise bitwise AND.
func (v U8x16) And(other U8x16) U8x16 {
	var result U8x16
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs lane-wise bitwise OR.
func (v U8x16) Or(other U8x16) U8x16 {
	var result U8x16
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// AndNot returns v &^ mask for every lane.
func (v U8x16) AndNot(mask U8x16) U8x16 {
	var result U8x16
	for i := range v {
		result[i] = v[i] &^ mask[i]
	}
	return result
}
