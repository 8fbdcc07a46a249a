package wide

import "math"

// F32Lanes is the number of lanes in F32x8 and U32x8 vectors.
const F32Lanes = 8

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F32x8 [F32Lanes]float32

// SplatF32 creates F32x8 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// LoadF32 reads the first 8 values of b.
// Panics if len(b) < 8.
func LoadF32(b []float32) F32x8 {
	var result F32x8
	copy(result[:], b[:F32Lanes])
	return result
}

// Store writes all 8 lanes to the first 8 values of b.
// Panics if len(b) < 8.
func (v F32x8) Store(b []float32) {
	copy(b[:F32Lanes], v[:])
}

// Add performs element-wise addition.
// Returns a new F32x8 with v[i] + other[i] for each element.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
// Returns a new F32x8 with v[i] - other[i] for each element.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Returns a new F32x8 with v[i] * other[i] for each element.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
// Any value less than minVal is set to minVal, any value greater than maxVal is set to maxVal.
func (v F32x8) Clamp(minVal, maxVal float32) F32x8 {
	var result F32x8
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Bits reinterprets every lane as its IEEE 754 bit pattern.
func (v F32x8) Bits() U32x8 {
	var result U32x8
	for i := range v {
		result[i] = math.Float32bits(v[i])
	}
	return result
}
