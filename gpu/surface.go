package gpu

import (
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// Surface keeps a texture in sync with an image that is edited on the CPU.
// Edits are reported with MarkDirty; Flush uploads only the union of the
// dirty rectangles when the texture supports region updates.
//
// A Surface is not safe for concurrent use.
type Surface[P pixel.Pixel] struct {
	img   *pixbuf.Image[P]
	tex   gpucontext.Texture
	dirty image.Rectangle
}

// NewSurface returns a surface for img. No texture exists until the first
// Flush.
func NewSurface[P pixel.Pixel](img *pixbuf.Image[P]) *Surface[P] {
	return &Surface[P]{img: img}
}

// Image returns the backing image.
func (s *Surface[P]) Image() *pixbuf.Image[P] { return s.img }

// Texture returns the texture from the last Flush, or nil.
func (s *Surface[P]) Texture() gpucontext.Texture { return s.tex }

// MarkDirty records that r changed. r is clipped to the image.
func (s *Surface[P]) MarkDirty(r image.Rectangle) {
	r = r.Intersect(s.bounds())
	if r.Empty() {
		return
	}
	s.dirty = s.dirty.Union(r)
}

// MarkAllDirty records that the whole image changed.
func (s *Surface[P]) MarkAllDirty() { s.dirty = s.bounds() }

// Dirty returns the pending dirty rectangle.
func (s *Surface[P]) Dirty() image.Rectangle { return s.dirty }

func (s *Surface[P]) bounds() image.Rectangle {
	return image.Rect(0, 0, s.img.Width(), s.img.Height())
}

// Flush brings the texture up to date and returns it. The first call
// creates the texture with creator; later calls update it in place,
// recreating it only when the texture accepts no updates.
func (s *Surface[P]) Flush(creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if s.tex == nil {
		tex, err := Upload(creator, s.img.View())
		if err != nil {
			return nil, err
		}
		s.tex, s.dirty = tex, image.Rectangle{}
		return tex, nil
	}
	if s.dirty.Empty() {
		return s.tex, nil
	}

	var err error
	switch s.tex.(type) {
	case gpucontext.TextureRegionUpdater:
		err = s.flushRegion()
	case gpucontext.TextureUpdater:
		err = Update(s.tex, s.img.View())
	default:
		pixbuf.Logger().Debug("gpu: texture not updatable, recreating")
		var tex gpucontext.Texture
		if tex, err = Upload(creator, s.img.View()); err == nil {
			s.tex = tex
		}
	}
	if err != nil {
		return nil, err
	}
	s.dirty = image.Rectangle{}
	return s.tex, nil
}

func (s *Surface[P]) flushRegion() error {
	r := s.dirty
	sub, err := s.img.View().Crop(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	if err != nil {
		return err
	}
	pixbuf.Logger().Debug("gpu: region update", "rect", r)
	return UpdateRegion(s.tex, sub.Own().View(), r.Min.X, r.Min.Y)
}
