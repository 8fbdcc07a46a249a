package pixbuf

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/pixbuf/pixel"
)

// colorModel returns the standard color model matching P.
func colorModel[P pixel.Pixel]() color.Model {
	switch pixel.Channels[P]() {
	case 1:
		return color.GrayModel
	case 3:
		return color.RGBAModel
	default:
		return color.NRGBAModel
	}
}

func toColor[P pixel.Pixel](p P) color.Color {
	switch v := any(p).(type) {
	case pixel.Y:
		return color.Gray{Y: v[0]}
	case pixel.YA:
		return color.NRGBA{R: v[0], G: v[0], B: v[0], A: v[1]}
	case pixel.RGB:
		return color.RGBA{R: v[0], G: v[1], B: v[2], A: 255}
	case pixel.RGBA:
		return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
	}
	return color.Transparent
}

// fromColor converts a standard color to P. Unlike pixel conversion from
// RGBA, a YA destination keeps the color's alpha.
func fromColor[P pixel.Pixel](c color.Color) P {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	rgba := pixel.RGBA{n.R, n.G, n.B, n.A}
	var p P
	if ya, ok := any(&p).(*pixel.YA); ok {
		*ya = pixel.YA{pixel.ToY(rgba)[0], n.A}
		return p
	}
	return pixel.Convert[P](rgba)
}

// ColorModel implements image.Image.
func (img *Image[P]) ColorModel() color.Model { return colorModel[P]() }

// Bounds implements image.Image.
func (img *Image[P]) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

// At implements image.Image. Points outside the image are transparent.
func (img *Image[P]) At(x, y int) color.Color {
	if !img.contains(x, y) {
		return color.Transparent
	}
	return toColor(img.PixelUnchecked(x, y))
}

// Set implements draw.Image. Points outside the image are ignored.
func (img *Image[P]) Set(x, y int, c color.Color) {
	if img.contains(x, y) {
		img.SetPixelUnchecked(x, y, fromColor[P](c))
	}
}

// ColorModel implements image.Image.
func (v View[P]) ColorModel() color.Model { return colorModel[P]() }

// Bounds implements image.Image.
func (v View[P]) Bounds() image.Rectangle { return image.Rect(0, 0, v.width, v.height) }

// At implements image.Image. Points outside the view are transparent.
func (v View[P]) At(x, y int) color.Color {
	if !v.contains(x, y) {
		return color.Transparent
	}
	return toColor(v.PixelUnchecked(x, y))
}

// FromImage copies any standard image into layout P.
func FromImage[P pixel.Pixel](src image.Image) (*Image[P], error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: bounds %v", ErrEmptyImage, b)
	}
	out := Alloc[P](b.Dx(), b.Dy())

	switch s := src.(type) {
	case *image.NRGBA:
		if pixel.Channels[P]() == 4 {
			for y := range out.height {
				off := s.PixOffset(b.Min.X, b.Min.Y+y)
				copy(out.Row(y), s.Pix[off:off+out.width*4])
			}
			return out, nil
		}
	case *image.Gray:
		if pixel.Channels[P]() == 1 {
			for y := range out.height {
				off := s.PixOffset(b.Min.X, b.Min.Y+y)
				copy(out.Row(y), s.Pix[off:off+out.width])
			}
			return out, nil
		}
	}

	for y := range out.height {
		for x := range out.width {
			out.SetPixelUnchecked(x, y, fromColor[P](src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return out, nil
}

// StdImage returns src as a standard library image. Y and RGBA views share
// their pixels with the result as *image.Gray and *image.NRGBA; the other
// layouts are copied into a new *image.NRGBA.
func StdImage[P pixel.Pixel](src View[P]) image.Image {
	r := src.Bounds()
	switch pixel.Channels[P]() {
	case 1:
		return &image.Gray{Pix: src.pix, Stride: src.width, Rect: r}
	case 4:
		return &image.NRGBA{Pix: src.pix, Stride: src.width * 4, Rect: r}
	}
	rgba := Convert[pixel.RGBA](src)
	return &image.NRGBA{Pix: rgba.pix, Stride: src.width * 4, Rect: r}
}
