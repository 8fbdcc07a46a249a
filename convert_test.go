package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"slices"
	"testing"

	"github.com/gogpu/pixbuf/pixel"
)

func TestCrop(t *testing.T) {
	src := Build[pixel.Y](4, 3).Buf([]byte{1, 2, 3, 1, 4, 5, 6, 2, 7, 8, 9, 3})

	sub, err := src.View().Crop(1, 1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := sub.Own().Bytes(); !slices.Equal(got, []byte{5, 6, 8, 9}) {
		t.Errorf("Crop().Own() = %v", got)
	}
	if p, _ := sub.Pixel(1, 0); p != (pixel.Y{6}) {
		t.Errorf("sub.Pixel(1, 0) = %v", p)
	}
	if _, err := sub.Pixel(2, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("sub.Pixel(2, 0) error = %v", err)
	}

	for _, r := range [][4]int{{3, 0, 2, 1}, {0, 2, 1, 2}, {-1, 0, 1, 1}, {0, 0, 0, 1}} {
		if _, err := src.View().Crop(r[0], r[1], r[2], r[3]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Crop(%v) error = %v", r, err)
		}
	}

	mut, err := src.Crop(2, 0, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := mut.SetPixel(0, 2, pixel.Y{42}); err != nil {
		t.Fatal(err)
	}
	if got := src.PixelUnchecked(2, 2); got != (pixel.Y{42}) {
		t.Errorf("SubImage write did not reach parent: %v", got)
	}
	if err := mut.SetPixel(2, 0, pixel.Y{1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SubImage.SetPixel out of window error = %v", err)
	}
}

func TestConvertImage(t *testing.T) {
	src := Build[pixel.RGBA](2, 1).Buf([]byte{255, 255, 255, 10, 0, 0, 0, 255})

	rgb := Convert[pixel.RGB](src.View())
	if !slices.Equal(rgb.Bytes(), []byte{255, 255, 255, 0, 0, 0}) {
		t.Errorf("RGB = %v", rgb.Bytes())
	}
	ya := Convert[pixel.YA](src.View())
	if !slices.Equal(ya.Bytes(), []byte{255, 255, 0, 255}) {
		t.Errorf("YA = %v", ya.Bytes())
	}
	same := Convert[pixel.RGBA](src.View())
	if !slices.Equal(same.Bytes(), src.Bytes()) || &same.Bytes()[0] == &src.Bytes()[0] {
		t.Error("identity conversion must be an equal copy")
	}
}

func TestRepeated(t *testing.T) {
	tile := Build[pixel.Y](2, 1).Buf([]byte{1, 2})
	img, err := Repeated(tile.View(), 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 2, 1, 2, 1, 2, 1, 2}; !slices.Equal(img.Bytes(), want) {
		t.Errorf("Repeated = %v, want %v", img.Bytes(), want)
	}

	translucent := Build[pixel.RGBA](1, 1).Fill(pixel.RGBA{1, 2, 3, 4})
	img2, err := Repeated(translucent.View(), 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 2, 3, 4, 1, 2, 3, 4}; !slices.Equal(img2.Bytes(), want) {
		t.Errorf("Repeated keeps alpha verbatim: got %v", img2.Bytes())
	}

	if _, err := Repeated(tile.View(), 3, 1); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Repeated(3, 1) error = %v", err)
	}
}

func TestPackUnpack(t *testing.T) {
	src := Build[pixel.RGBA](2, 1).Buf([]byte{0x11, 0x22, 0x33, 0x44, 1, 2, 3, 255})
	p := Pack(src.View())
	if p.Width != 2 || p.Height != 1 || p.Pix[0] != 0x44112233 {
		t.Fatalf("Pack = %+v", p)
	}
	if back := Unpack[pixel.RGBA](p); !slices.Equal(back.Bytes(), src.Bytes()) {
		t.Errorf("Unpack = %v", back.Bytes())
	}
	if rgb := Unpack[pixel.RGB](p); !slices.Equal(rgb.Bytes(), []byte{0x11, 0x22, 0x33, 1, 2, 3}) {
		t.Errorf("Unpack[RGB] = %v", rgb.Bytes())
	}
}

func TestFloatImage(t *testing.T) {
	src := Alloc[pixel.RGB](7, 3)
	for i := range src.pix {
		src.pix[i] = byte(i * 4)
	}
	f := ToFloat(src.View())
	if len(f.Pix) != len(src.pix) || f.Width != 7 || f.Height != 3 {
		t.Fatalf("ToFloat size = %d (%dx%d)", len(f.Pix), f.Width, f.Height)
	}
	if !slices.Equal(f.ToBytes().Bytes(), src.Bytes()) {
		t.Error("float round trip is not exact")
	}
}

func TestStdImage(t *testing.T) {
	img := Build[pixel.RGB](2, 2).Fill(pixel.RGB{10, 20, 30})

	var _ draw.Image = img
	var _ image.Image = img.View()

	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	if got := img.At(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("At(1, 1) = %v", got)
	}
	if got := img.At(5, 5); got != color.Transparent {
		t.Errorf("At outside = %v", got)
	}

	img.Set(0, 0, color.NRGBA{1, 2, 3, 255})
	if got := img.PixelUnchecked(0, 0); got != (pixel.RGB{1, 2, 3}) {
		t.Errorf("after Set = %v", got)
	}

	ya := Alloc[pixel.YA](1, 1)
	ya.Set(0, 0, color.NRGBA{255, 255, 255, 100})
	if got := ya.PixelUnchecked(0, 0); got != (pixel.YA{255, 100}) {
		t.Errorf("YA Set keeps alpha: got %v", got)
	}
}

func TestFromImage(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.Pix = []byte{1, 2, 3, 4, 5, 6, 7, 8}

	rgba, err := FromImage[pixel.RGBA](nrgba)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(rgba.Bytes(), nrgba.Pix) {
		t.Errorf("FromImage[RGBA] = %v", rgba.Bytes())
	}

	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.Pix = []byte{1, 2, 3, 4}
	y, err := FromImage[pixel.Y](g.SubImage(image.Rect(1, 0, 2, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(y.Bytes(), []byte{2, 4}) {
		t.Errorf("FromImage[Y] of sub-image = %v", y.Bytes())
	}

	rgb, err := FromImage[pixel.RGB](g)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(rgb.Bytes(), []byte{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}) {
		t.Errorf("FromImage[RGB] of gray = %v", rgb.Bytes())
	}

	if _, err := FromImage[pixel.Y](image.NewGray(image.Rectangle{})); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image error = %v", err)
	}
}
