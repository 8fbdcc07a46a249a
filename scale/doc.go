// Package scale resizes pixbuf images.
//
// From fastest to slowest:
//
//   - [Nearest] picks the source pixel under each destination pixel center.
//   - [Sampled] evaluates a nearest, bilinear or Catmull-Rom kernel per pixel.
//   - [Interpolate] uses any golang.org/x/image/draw interpolator.
//   - [Resize] runs a separable convolution with the chosen [Filter].
//
// [Half] and [Mipmaps] build box-filtered half-size levels.
package scale
