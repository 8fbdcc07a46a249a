// Package imageio decodes and encodes pixbuf images.
//
// Decoding understands PNG, JPEG, GIF, BMP, TIFF and WebP and converts the
// result to the requested pixel layout. Encoding writes PNG, JPEG, GIF, BMP
// or TIFF.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP with image.Decode

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a format cannot be encoded or a
	// file extension is not recognized.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when decoding zero bytes.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Format is an encodable file format.
type Format uint8

// Supported encoding formats.
const (
	PNG Format = iota
	JPEG
	GIF
	BMP
	TIFF
)

// DefaultJPEGQuality is the JPEG quality used by Encode and Save.
const DefaultJPEGQuality = 90

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// DecodeImage reads an image in any supported format without converting
// it.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	pixbuf.Logger().Debug("imageio: decoded",
		"format", format, "bounds", img.Bounds(), "type", fmt.Sprintf("%T", img))
	return img, nil
}

// Decode reads an image in any supported format and converts it to P.
func Decode[P pixel.Pixel](r io.Reader) (*pixbuf.Image[P], error) {
	img, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}
	return pixbuf.FromImage[P](img)
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes[P pixel.Pixel](data []byte) (*pixbuf.Image[P], error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode[P](bytes.NewReader(data))
}

// LoadImage decodes the image file at path without converting it.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeImage(f)
}

// Load decodes the image file at path and converts it to P.
func Load[P pixel.Pixel](path string) (*pixbuf.Image[P], error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return pixbuf.FromImage[P](img)
}

// Encode writes src to w in format.
func Encode[P pixel.Pixel](w io.Writer, src pixbuf.View[P], format Format) error {
	img := pixbuf.StdImage(src)
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case GIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", format, err)
	}
	return nil
}

// EncodeJPEG writes src to w as JPEG with quality clamped to [1, 100].
func EncodeJPEG[P pixel.Pixel](w io.Writer, src pixbuf.View[P], quality int) error {
	quality = max(1, min(quality, 100))
	if err := jpeg.Encode(w, pixbuf.StdImage(src), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imageio: encode jpeg: %w", err)
	}
	return nil
}

// EncodePNG returns src encoded as PNG.
func EncodePNG[P pixel.Pixel](src pixbuf.View[P]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, src, PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes src to path in the format named by its extension.
func Save[P pixel.Pixel](path string, src pixbuf.View[P]) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, src, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
