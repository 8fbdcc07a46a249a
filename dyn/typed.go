package dyn

import (
	"image"
	"io"
	"os"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/drawing"
	"github.com/gogpu/pixbuf/filter"
	"github.com/gogpu/pixbuf/gpu"
	"github.com/gogpu/pixbuf/imageio"
	"github.com/gogpu/pixbuf/pixel"
	"github.com/gogpu/pixbuf/scale"
	"github.com/gogpu/pixbuf/term"
)

// typed adapts an image of a fixed layout to the buffer interface.
type typed[P pixel.Pixel] struct {
	*pixbuf.Image[P]
}

func (t typed[P]) convert(f Format) *Image {
	v := t.View()
	switch f {
	case Y:
		return Of(pixbuf.Convert[pixel.Y](v))
	case YA:
		return Of(pixbuf.Convert[pixel.YA](v))
	case RGB:
		return Of(pixbuf.Convert[pixel.RGB](v))
	default:
		return Of(pixbuf.Convert[pixel.RGBA](v))
	}
}

func (t typed[P]) resize(width, height int, f scale.Filter) (*Image, error) {
	return wrap(scale.Resize(t.View(), width, height, f))
}

func (t typed[P]) blur(radius float64) { filter.Blur(t.Image, radius) }

func (t typed[P]) blurBox(radius float64) (*Image, error) {
	return wrap(filter.Box(t.View(), radius))
}

func (t typed[P]) blurGaussian(sigma float64) (*Image, error) {
	return wrap(filter.Gaussian(t.View(), sigma))
}

func (t typed[P]) adjust(m filter.ColorMatrix) { filter.Apply(t.Image, m) }

func wrap[P pixel.Pixel](img *pixbuf.Image[P], err error) (*Image, error) {
	if err != nil {
		return nil, err
	}
	return Of(img), nil
}

func (t typed[P]) std() image.Image { return pixbuf.StdImage(t.View()) }

func (t typed[P]) overlay(src *Image, x, y int, blend bool) error {
	if !blend {
		switch s := src.buf.(type) {
		case typed[pixel.Y]:
			return pixbuf.OverlayAt(t.Image, s.View(), x, y)
		case typed[pixel.YA]:
			return pixbuf.OverlayAt(t.Image, s.View(), x, y)
		case typed[pixel.RGB]:
			return pixbuf.OverlayAt(t.Image, s.View(), x, y)
		default:
			return pixbuf.OverlayAt(t.Image, To[pixel.RGBA](src).View(), x, y)
		}
	}
	// Each destination layout blends with the source layout it supports.
	switch pixel.Channels[P]() {
	case 1:
		// Luma carries no alpha: composite over an opaque luma-alpha copy
		// and keep the luma.
		ya := pixbuf.Convert[pixel.YA](t.View())
		if err := pixbuf.BlendOverlayAt(ya, lumaAlpha(src).View(), x, y); err != nil {
			return err
		}
		copy(t.Bytes(), pixbuf.Convert[P](ya.View()).Bytes())
		return nil
	case 2:
		return pixbuf.BlendOverlayAt(t.Image, lumaAlpha(src).View(), x, y)
	default:
		return pixbuf.BlendOverlayAt(t.Image, To[pixel.RGBA](src).View(), x, y)
	}
}

// lumaAlpha converts src to luma with alpha, keeping the alpha of RGBA
// sources.
func lumaAlpha(src *Image) *pixbuf.Image[pixel.YA] {
	if s, ok := src.buf.(typed[pixel.YA]); ok {
		return s.Image
	}
	rgba := To[pixel.RGBA](src)
	out := pixbuf.Alloc[pixel.YA](rgba.Width(), rgba.Height())
	pix := out.Bytes()
	i := 0
	for p := range rgba.Chunked() {
		pix[i] = pixel.Luma(pixel.RGB{p[0], p[1], p[2]})[0]
		pix[i+1] = p[3]
		i += 2
	}
	return out
}

func (t typed[P]) fill(x, y, w, h int, c pixel.RGBA, border bool) {
	if border {
		drawing.Box(t.Image, x, y, w, h, pixel.Convert[P](c))
	} else {
		drawing.FilledBox(t.Image, x, y, w, h, pixel.Convert[P](c))
	}
}

func (t typed[P]) circle(center image.Point, r int, c pixel.RGBA, border bool) {
	if border {
		drawing.BorderCircle(t.Image, center, r, pixel.Convert[P](c))
	} else {
		drawing.Circle(t.Image, center, r, pixel.Convert[P](c))
	}
}

func (t typed[P]) line(a, b image.Point, c pixel.RGBA) {
	drawing.Line(t.Image, a, b, pixel.Convert[P](c))
}

func (t typed[P]) encode(w io.Writer, f imageio.Format) error {
	return imageio.Encode(w, t.View(), f)
}

func (t typed[P]) write(w io.Writer, opts term.Options) error {
	return term.Write(w, t.View(), opts)
}

func (t typed[P]) writeTerminal(f *os.File, opts term.Options) error {
	return term.WriteTerminal(f, t.View(), opts)
}

func (t typed[P]) upload(c gpucontext.TextureCreator) (gpucontext.Texture, error) {
	return gpu.Upload(c, t.View())
}
