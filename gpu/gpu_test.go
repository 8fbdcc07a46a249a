package gpu

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

type staticTexture struct {
	w, h int
	data []byte
}

func (t *staticTexture) Width() int  { return t.w }
func (t *staticTexture) Height() int { return t.h }

type fullTexture struct {
	staticTexture
	updates int
}

func (t *fullTexture) UpdateData(data []byte) error {
	if len(data) != t.w*t.h*4 {
		return errors.New("bad size")
	}
	t.data = append(t.data[:0], data...)
	t.updates++
	return nil
}

type regionTexture struct {
	staticTexture
	regions []image.Rectangle
}

func (t *regionTexture) UpdateRegion(x, y, w, h int, data []byte) error {
	for row := range h {
		copy(t.data[((y+row)*t.w+x)*4:], data[row*w*4:(row+1)*w*4])
	}
	t.regions = append(t.regions, image.Rect(x, y, x+w, y+h))
	return nil
}

type creator struct {
	kind string
	made []gpucontext.Texture
	err  error
}

func (c *creator) NewTextureFromRGBA(w, h int, data []byte) (gpucontext.Texture, error) {
	if c.err != nil {
		return nil, c.err
	}
	base := staticTexture{w: w, h: h, data: append([]byte(nil), data...)}
	var tex gpucontext.Texture
	switch c.kind {
	case "full":
		tex = &fullTexture{staticTexture: base}
	case "region":
		tex = &regionTexture{staticTexture: base}
	default:
		tex = &base
	}
	c.made = append(c.made, tex)
	return tex, nil
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  gputypes.TextureFormat
		want gputypes.TextureFormat
	}{
		{"Y", Format[pixel.Y](), gputypes.TextureFormatR8Unorm},
		{"YA", Format[pixel.YA](), gputypes.TextureFormatRG8Unorm},
		{"RGB", Format[pixel.RGB](), gputypes.TextureFormatRGBA8Unorm},
		{"RGBA", Format[pixel.RGBA](), gputypes.TextureFormatRGBA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Format = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	img := pixbuf.Alloc[pixel.YA](3, 2)
	usage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	d := Descriptor(img.View(), "mask", usage)

	want := gputypes.Extent3D{Width: 3, Height: 2, DepthOrArrayLayers: 1}
	if d.Size != want {
		t.Errorf("Size = %+v, want %+v", d.Size, want)
	}
	if d.Label != "mask" || d.Format != gputypes.TextureFormatRG8Unorm || d.Usage != usage {
		t.Errorf("descriptor = %+v", d)
	}
	if d.MipLevelCount != 1 || d.SampleCount != 1 || d.Dimension != gputypes.TextureDimension2D {
		t.Errorf("descriptor = %+v", d)
	}
}

func TestTexelSize(t *testing.T) {
	tests := []struct {
		f    gputypes.TextureFormat
		want int
	}{
		{gputypes.TextureFormatR8Unorm, 1},
		{gputypes.TextureFormatRG8Unorm, 2},
		{gputypes.TextureFormatRGBA8Unorm, 4},
		{gputypes.TextureFormatRGBA8UnormSrgb, 4},
		{gputypes.TextureFormatBGRA8Unorm, 4},
		{gputypes.TextureFormatBGRA8UnormSrgb, 4},
		{gputypes.TextureFormatUndefined, 0},
		{gputypes.TextureFormatDepth32Float, 0},
	}
	for _, tt := range tests {
		if got := TexelSize(tt.f); got != tt.want {
			t.Errorf("TexelSize(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestBytes(t *testing.T) {
	rgb := pixbuf.ViewOf[pixel.RGB](1, 1, []byte{1, 2, 3})
	ya := pixbuf.ViewOf[pixel.YA](1, 1, []byte{7, 9})

	tests := []struct {
		name string
		got  func() ([]byte, error)
		want []byte
	}{
		{"rgb as rgba", func() ([]byte, error) { return Bytes(rgb, gputypes.TextureFormatRGBA8Unorm) }, []byte{1, 2, 3, 255}},
		{"rgb as bgra", func() ([]byte, error) { return Bytes(rgb, gputypes.TextureFormatBGRA8UnormSrgb) }, []byte{3, 2, 1, 255}},
		{"ya as rg8", func() ([]byte, error) { return Bytes(ya, gputypes.TextureFormatRG8Unorm) }, []byte{7, 9}},
		{"ya as r8", func() ([]byte, error) { return Bytes(ya, gputypes.TextureFormatR8Unorm) }, []byte{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Bytes = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		if _, err := Bytes(rgb, gputypes.TextureFormatDepth32Float); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("err = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("no aliasing", func(t *testing.T) {
		src := pixbuf.ViewOf[pixel.RGBA](1, 1, []byte{10, 20, 30, 40})
		b, _ := Bytes(src, gputypes.TextureFormatBGRA8Unorm)
		b[1] = 99
		if !bytes.Equal(src.Bytes(), []byte{10, 20, 30, 40}) {
			t.Errorf("source changed to %v", src.Bytes())
		}
	})
}

func TestPaddedBytesPerRow(t *testing.T) {
	tests := []struct {
		width int
		f     gputypes.TextureFormat
		want  int
	}{
		{0, gputypes.TextureFormatRGBA8Unorm, 0},
		{1, gputypes.TextureFormatR8Unorm, 256},
		{64, gputypes.TextureFormatRGBA8Unorm, 256},
		{65, gputypes.TextureFormatRGBA8Unorm, 512},
		{200, gputypes.TextureFormatRG8Unorm, 512},
	}
	for _, tt := range tests {
		if got := PaddedBytesPerRow(tt.width, tt.f); got != tt.want {
			t.Errorf("PaddedBytesPerRow(%d, %v) = %d, want %d", tt.width, tt.f, got, tt.want)
		}
	}
}

func TestPadUnpad(t *testing.T) {
	src := pixbuf.Alloc[pixel.RGBA](3, 2)
	for i := range src.Bytes() {
		src.Bytes()[i] = byte(i * 7)
	}

	for _, f := range []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm} {
		t.Run(f.String(), func(t *testing.T) {
			data, pitch, err := Pad(src.View(), f)
			if err != nil {
				t.Fatal(err)
			}
			if pitch != 256 || len(data) != 512 {
				t.Fatalf("pitch %d, len %d", pitch, len(data))
			}
			for _, b := range data[12:256] {
				if b != 0 {
					t.Fatal("padding is not zero")
				}
			}
			got, err := Unpad[pixel.RGBA](data, 3, 2, pitch, f)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got.Bytes(), src.Bytes()) {
				t.Errorf("round trip = %v, want %v", got.Bytes(), src.Bytes())
			}
		})
	}

	t.Run("convert on read", func(t *testing.T) {
		data := make([]byte, 256)
		copy(data, []byte{50, 60, 70, 80})
		got, err := Unpad[pixel.RGB](data, 1, 1, 256, gputypes.TextureFormatBGRA8Unorm)
		if err != nil {
			t.Fatal(err)
		}
		if p := got.PixelUnchecked(0, 0); p != (pixel.RGB{70, 60, 50}) {
			t.Errorf("pixel = %v", p)
		}
	})

	t.Run("last row may be tight", func(t *testing.T) {
		data := make([]byte, 256+2)
		data[256], data[257] = 5, 6
		got, err := Unpad[pixel.YA](data, 1, 2, 256, gputypes.TextureFormatRG8Unorm)
		if err != nil {
			t.Fatal(err)
		}
		if p := got.PixelUnchecked(0, 1); p != (pixel.YA{5, 6}) {
			t.Errorf("pixel = %v", p)
		}
	})
}

func TestUnpad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		w, h   int
		pitch  int
		format gputypes.TextureFormat
		want   error
	}{
		{"unsupported", make([]byte, 256), 1, 1, 256, gputypes.TextureFormatUndefined, ErrUnsupportedFormat},
		{"empty", nil, 0, 1, 256, gputypes.TextureFormatR8Unorm, pixbuf.ErrEmptyImage},
		{"short", make([]byte, 260), 2, 2, 256, gputypes.TextureFormatRGBA8Unorm, pixbuf.ErrSizeMismatch},
		{"narrow pitch", make([]byte, 1024), 80, 1, 256, gputypes.TextureFormatRGBA8Unorm, pixbuf.ErrSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unpad[pixel.RGBA](tt.data, tt.w, tt.h, tt.pitch, tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpload(t *testing.T) {
	src := pixbuf.ViewOf[pixel.Y](2, 1, []byte{10, 20})

	if _, err := Upload(nil, src); !errors.Is(err, ErrNoCreator) {
		t.Errorf("nil creator: err = %v", err)
	}

	failure := errors.New("device lost")
	if _, err := Upload(&creator{err: failure}, src); !errors.Is(err, failure) {
		t.Errorf("creator error not wrapped: %v", err)
	}

	c := &creator{}
	tex, err := Upload(c, src)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 2 || tex.Height() != 1 {
		t.Errorf("texture %dx%d", tex.Width(), tex.Height())
	}
	want := []byte{10, 10, 10, 255, 20, 20, 20, 255}
	if got := tex.(*staticTexture).data; !bytes.Equal(got, want) {
		t.Errorf("uploaded %v, want %v", got, want)
	}
}

func TestUpdate(t *testing.T) {
	src := pixbuf.Build[pixel.RGB](2, 2).Fill(pixel.RGB{1, 2, 3}).View()

	if err := Update(&staticTexture{w: 2, h: 2}, src); !errors.Is(err, ErrNotUpdatable) {
		t.Errorf("static texture: err = %v", err)
	}
	small := &fullTexture{staticTexture: staticTexture{w: 1, h: 1}}
	if err := Update(small, src); !errors.Is(err, pixbuf.ErrSizeMismatch) {
		t.Errorf("size mismatch: err = %v", err)
	}

	tex := &fullTexture{staticTexture: staticTexture{w: 2, h: 2}}
	if err := Update(tex, src); err != nil {
		t.Fatal(err)
	}
	if tex.updates != 1 || !bytes.Equal(tex.data[:4], []byte{1, 2, 3, 255}) {
		t.Errorf("updates %d, data %v", tex.updates, tex.data)
	}
}

func TestUpdateRegion(t *testing.T) {
	tex := &regionTexture{staticTexture: staticTexture{w: 3, h: 3, data: make([]byte, 36)}}
	patch := pixbuf.ViewOf[pixel.RGBA](1, 1, []byte{9, 8, 7, 6})

	if err := UpdateRegion(tex, patch, 3, 0); !errors.Is(err, pixbuf.ErrOutOfBounds) {
		t.Errorf("out of bounds: err = %v", err)
	}
	if err := UpdateRegion(&fullTexture{}, patch, 0, 0); !errors.Is(err, ErrNotUpdatable) {
		t.Errorf("full-only texture: err = %v", err)
	}
	if err := UpdateRegion(tex, patch, 2, 1); err != nil {
		t.Fatal(err)
	}
	off := (1*3 + 2) * 4
	if !bytes.Equal(tex.data[off:off+4], []byte{9, 8, 7, 6}) {
		t.Errorf("texel = %v", tex.data[off:off+4])
	}
}

func TestSurface_RegionUpdates(t *testing.T) {
	img := pixbuf.Alloc[pixel.RGB](4, 4)
	s := NewSurface(img)
	c := &creator{kind: "region"}

	tex, err := s.Flush(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.made) != 1 || s.Texture() != tex {
		t.Fatalf("made %d textures", len(c.made))
	}

	if again, _ := s.Flush(c); again != tex || len(tex.(*regionTexture).regions) != 0 {
		t.Error("clean flush touched the texture")
	}

	s.MarkDirty(image.Rect(10, 10, 20, 20))
	if !s.Dirty().Empty() {
		t.Errorf("dirty = %v after marking outside the image", s.Dirty())
	}

	img.SetPixelUnchecked(1, 1, pixel.RGB{200, 100, 50})
	img.SetPixelUnchecked(2, 3, pixel.RGB{1, 1, 1})
	s.MarkDirty(image.Rect(1, 1, 2, 2))
	s.MarkDirty(image.Rect(2, 3, 3, 4))
	if want := image.Rect(1, 1, 3, 4); s.Dirty() != want {
		t.Fatalf("dirty = %v, want %v", s.Dirty(), want)
	}
	if _, err := s.Flush(c); err != nil {
		t.Fatal(err)
	}

	rt := tex.(*regionTexture)
	if len(rt.regions) != 1 || rt.regions[0] != image.Rect(1, 1, 3, 4) {
		t.Errorf("regions = %v", rt.regions)
	}
	off := (1*4 + 1) * 4
	if !bytes.Equal(rt.data[off:off+4], []byte{200, 100, 50, 255}) {
		t.Errorf("texel = %v", rt.data[off:off+4])
	}
	if !s.Dirty().Empty() || len(c.made) != 1 {
		t.Errorf("dirty %v, made %d", s.Dirty(), len(c.made))
	}
}

func TestSurface_Fallbacks(t *testing.T) {
	t.Run("full update", func(t *testing.T) {
		s := NewSurface(pixbuf.Alloc[pixel.RGBA](2, 2))
		c := &creator{kind: "full"}
		tex, _ := s.Flush(c)
		s.MarkAllDirty()
		if _, err := s.Flush(c); err != nil {
			t.Fatal(err)
		}
		if n := tex.(*fullTexture).updates; n != 1 || len(c.made) != 1 {
			t.Errorf("updates %d, made %d", n, len(c.made))
		}
	})

	t.Run("recreate", func(t *testing.T) {
		s := NewSurface(pixbuf.Alloc[pixel.Y](2, 2))
		c := &creator{}
		first, _ := s.Flush(c)
		s.Image().SetPixelUnchecked(0, 0, pixel.Y{255})
		s.MarkAllDirty()
		second, err := s.Flush(c)
		if err != nil {
			t.Fatal(err)
		}
		if second == first || len(c.made) != 2 {
			t.Fatalf("made %d textures", len(c.made))
		}
		if got := second.(*staticTexture).data[:4]; !bytes.Equal(got, []byte{255, 255, 255, 255}) {
			t.Errorf("texel = %v", got)
		}
	})

	t.Run("no creator", func(t *testing.T) {
		s := NewSurface(pixbuf.Alloc[pixel.Y](1, 1))
		if _, err := s.Flush(nil); !errors.Is(err, ErrNoCreator) {
			t.Errorf("err = %v", err)
		}
	})
}
