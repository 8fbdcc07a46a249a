// Package filter provides blur and color filters for pixbuf images.
//
// [Blur] is a separable Gaussian blur that works in place on any pixel
// layout, convolving every channel (alpha included) independently and
// clamping at the edges. [Box] and [Gaussian] return blurred copies using
// bild and imaging respectively. [ColorMatrix] applies 4x5 color
// transforms such as sepia, saturation and hue rotation.
package filter
