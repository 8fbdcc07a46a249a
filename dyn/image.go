package dyn

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/drawing"
	"github.com/gogpu/pixbuf/filter"
	"github.com/gogpu/pixbuf/imageio"
	"github.com/gogpu/pixbuf/pixel"
	"github.com/gogpu/pixbuf/scale"
	"github.com/gogpu/pixbuf/term"
)

// buffer is the layout-specific half of an Image. It is implemented by
// typed[P] for every pixel layout.
type buffer interface {
	Width() int
	Height() int
	Bytes() []byte
	FlipV()
	FlipH()
	Rot180()
	Rot90() error
	Rot270() error
	Transpose() error

	convert(Format) *Image
	resize(width, height int, f scale.Filter) (*Image, error)
	blur(radius float64)
	blurBox(radius float64) (*Image, error)
	blurGaussian(sigma float64) (*Image, error)
	adjust(m filter.ColorMatrix)
	std() image.Image
	overlay(src *Image, x, y int, blend bool) error
	fill(x, y, w, h int, c pixel.RGBA, border bool)
	circle(center image.Point, r int, c pixel.RGBA, border bool)
	line(a, b image.Point, c pixel.RGBA)
	encode(w io.Writer, f imageio.Format) error
	write(w io.Writer, opts term.Options) error
	writeTerminal(f *os.File, opts term.Options) error
	upload(c gpucontext.TextureCreator) (gpucontext.Texture, error)
}

// Image is an image with a pixel layout chosen at run time.
type Image struct {
	format Format
	buf    buffer
}

// New allocates a zeroed image of the given format and size.
func New(f Format, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pixbuf.ErrEmptyImage, width, height)
	}
	switch f {
	case Y:
		return Of(pixbuf.Alloc[pixel.Y](width, height)), nil
	case YA:
		return Of(pixbuf.Alloc[pixel.YA](width, height)), nil
	case RGB:
		return Of(pixbuf.Alloc[pixel.RGB](width, height)), nil
	case RGBA:
		return Of(pixbuf.Alloc[pixel.RGBA](width, height)), nil
	}
	return nil, fmt.Errorf("dyn: invalid format %v", f)
}

// Of wraps img without copying.
func Of[P pixel.Pixel](img *pixbuf.Image[P]) *Image {
	return &Image{format: formatOf[P](), buf: typed[P]{img}}
}

func formatOf[P pixel.Pixel]() Format {
	return Format(pixel.Channels[P]() - 1) // #nosec G115 -- 1 to 4
}

// To returns d in layout P. The result shares pixels with d when d already
// has layout P and is a converted copy otherwise.
func To[P pixel.Pixel](d *Image) *pixbuf.Image[P] {
	if t, ok := d.buf.(typed[P]); ok {
		return t.Image
	}
	return d.buf.convert(formatOf[P]()).buf.(typed[P]).Image //nolint:errcheck // convert returns the requested layout
}

// FromImage copies src into the format reported by FormatOf.
func FromImage(src image.Image) (*Image, error) {
	var (
		d   *Image
		err error
	)
	switch FormatOf(src) {
	case Y:
		d, err = from[pixel.Y](src)
	case RGB:
		d, err = from[pixel.RGB](src)
	default:
		d, err = from[pixel.RGBA](src)
	}
	if err != nil {
		return nil, fmt.Errorf("dyn: %w", err)
	}
	return d, nil
}

func from[P pixel.Pixel](src image.Image) (*Image, error) {
	img, err := pixbuf.FromImage[P](src)
	if err != nil {
		return nil, err
	}
	return Of(img), nil
}

// Decode reads an image in any format imageio understands.
func Decode(r io.Reader) (*Image, error) {
	img, err := imageio.DecodeImage(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// Load decodes the image file at path.
func Load(path string) (*Image, error) {
	img, err := imageio.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// Width returns the width in pixels.
func (d *Image) Width() int { return d.buf.Width() }

// Height returns the height in pixels.
func (d *Image) Height() int { return d.buf.Height() }

// Format returns the pixel layout.
func (d *Image) Format() Format { return d.format }

// Bytes returns the pixel data in row-major order.
func (d *Image) Bytes() []byte { return d.buf.Bytes() }

// FlipV flips the image vertically in place.
func (d *Image) FlipV() { d.buf.FlipV() }

// FlipH flips the image horizontally in place.
func (d *Image) FlipH() { d.buf.FlipH() }

// Rot180 rotates the image by 180 degrees in place.
func (d *Image) Rot180() { d.buf.Rot180() }

// Rot90 rotates a square image clockwise in place.
func (d *Image) Rot90() error { return d.buf.Rot90() }

// Rot270 rotates a square image counter-clockwise in place.
func (d *Image) Rot270() error { return d.buf.Rot270() }

// Transpose transposes a square image in place.
func (d *Image) Transpose() error { return d.buf.Transpose() }

// Convert returns a copy of d in format f.
func (d *Image) Convert(f Format) (*Image, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("dyn: invalid format %v", f)
	}
	return d.buf.convert(f), nil
}

// Scale returns d resized to width x height with filter. A zero width or
// height keeps the aspect ratio.
func (d *Image) Scale(width, height int, f scale.Filter) (*Image, error) {
	return d.buf.resize(width, height, f)
}

// Blur applies a Gaussian blur in place.
func (d *Image) Blur(radius float64) { d.buf.blur(radius) }

// BlurBox returns a box blurred copy of d.
func (d *Image) BlurBox(radius float64) (*Image, error) { return d.buf.blurBox(radius) }

// BlurGaussian returns a copy of d blurred with the given sigma, weighting
// colors by alpha.
func (d *Image) BlurGaussian(sigma float64) (*Image, error) { return d.buf.blurGaussian(sigma) }

// Adjust applies a color matrix in place.
func (d *Image) Adjust(m filter.ColorMatrix) { d.buf.adjust(m) }

// Std returns d as a standard library image.
func (d *Image) Std() image.Image { return d.buf.std() }

// Overlay places src with its top-left corner at (x, y). With blend the
// source is alpha composited, otherwise pixels are copied with a hard alpha
// cutoff.
func (d *Image) Overlay(src *Image, x, y int, blend bool) error {
	return d.buf.overlay(src, x, y, blend)
}

// Box draws the border of a rectangle.
func (d *Image) Box(x, y, w, h int, c pixel.RGBA) { d.buf.fill(x, y, w, h, c, true) }

// FilledBox fills a rectangle.
func (d *Image) FilledBox(x, y, w, h int, c pixel.RGBA) { d.buf.fill(x, y, w, h, c, false) }

// Circle fills a circle.
func (d *Image) Circle(center image.Point, r int, c pixel.RGBA) {
	d.buf.circle(center, r, c, false)
}

// BorderCircle draws the outline of a circle.
func (d *Image) BorderCircle(center image.Point, r int, c pixel.RGBA) {
	d.buf.circle(center, r, c, true)
}

// Line draws a line from a to b.
func (d *Image) Line(a, b image.Point, c pixel.RGBA) { d.buf.line(a, b, c) }

// Text draws text with its top-left corner at (x, y). Luma images are drawn
// through an RGBA copy and written back.
func (d *Image) Text(x, y int, text string, c pixel.RGB, opts drawing.TextOptions) {
	switch t := d.buf.(type) {
	case typed[pixel.RGB]:
		drawing.TextRGB(t.Image, x, y, text, c, opts)
	case typed[pixel.RGBA]:
		drawing.Text(t.Image, x, y, text, c, opts)
	default:
		rgba := To[pixel.RGBA](d)
		drawing.Text(rgba, x, y, text, c, opts)
		back := Of(rgba).buf.convert(d.format).Bytes()
		if d.format == YA {
			// Luma conversion drops alpha.
			for i, a := 1, 3; i < len(back); i, a = i+2, a+4 {
				back[i] = rgba.Bytes()[a]
			}
		}
		copy(d.Bytes(), back)
	}
}

// Encode writes d to w in format f.
func (d *Image) Encode(w io.Writer, f imageio.Format) error { return d.buf.encode(w, f) }

// Save writes d to path in the format named by its extension.
func (d *Image) Save(path string) error {
	f, err := imageio.FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path) // #nosec G304 -- caller-chosen output path
	if err != nil {
		return fmt.Errorf("dyn: create file: %w", err)
	}
	if err := d.Encode(file, f); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Write encodes d for a terminal, see term.Write.
func (d *Image) Write(w io.Writer, opts term.Options) error { return d.buf.write(w, opts) }

// WriteTerminal encodes d for the terminal on f, see term.WriteTerminal.
func (d *Image) WriteTerminal(f *os.File, opts term.Options) error {
	return d.buf.writeTerminal(f, opts)
}

// Upload creates a GPU texture holding d, see gpu.Upload.
func (d *Image) Upload(c gpucontext.TextureCreator) (gpucontext.Texture, error) {
	return d.buf.upload(c)
}
