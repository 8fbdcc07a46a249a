// Package wide provides SIMD-friendly wide types for batch pixel processing.
//
// The types here (U8x16, U32x8, F32x8) are fixed-size arrays with small
// per-lane loops, shaped so the Go compiler can auto-vectorize them on
// architectures with SSE, AVX or NEON.
//
// # Wide Types
//
// U8x16: 16 bytes for mask-and-select compositing on raw pixel memory.
// U32x8: 8 uint32 values for bit-level tricks on float representations.
// F32x8: 8 float32 values for normalization and filter arithmetic.
//
// # Batch Processing
//
// Every caller processes full vectors first and finishes the remainder with
// a scalar loop. The scalar loop is the reference behaviour: a vector path
// must produce byte-identical output.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//
// # Usage Example
//
//	// Select bytes from src where mask is set, keep dst elsewhere.
//	d := wide.LoadU8(dst)
//	s := wide.LoadU8(src)
//	s.And(mask).Or(d.AndNot(mask)).Store(dst)
package wide
