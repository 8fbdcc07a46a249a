package filter

import (
	"sync"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/internal/parallel"
	"github.com/gogpu/pixbuf/pixel"
)

// Blur applies a Gaussian blur with sigma radius to img in place.
// A radius <= 0 leaves the image unchanged.
func Blur[P pixel.Pixel](img *pixbuf.Image[P], radius float64) {
	BlurXY(img, radius, radius)
}

// BlurXY blurs img in place with separate horizontal and vertical radii.
// The horizontal pass convolves each row into a float buffer and the
// vertical pass convolves its columns back into img.
func BlurXY[P pixel.Pixel](img *pixbuf.Image[P], radiusX, radiusY float64) {
	if radiusX <= 0 && radiusY <= 0 {
		return
	}
	pixbuf.Logger().Debug("filter: blur",
		"width", img.Width(), "height", img.Height(),
		"radiusX", radiusX, "radiusY", radiusY)

	pix := img.Bytes()
	temp := getTempBuffer(len(pix))
	defer putTempBuffer(temp)

	w, h, c := img.Width(), img.Height(), pixel.Channels[P]()
	kx, ky := CachedGaussianKernel(radiusX), CachedGaussianKernel(radiusY)
	parallel.Rows(h, func(y0, y1 int) {
		blurHorizontal(pix, temp, w, c, y0, y1, kx)
	})
	parallel.Rows(h, func(y0, y1 int) {
		blurVertical(temp, pix, w, h, c, y0, y1, ky)
	})
}

// BlurARGB blurs a packed 0xAARRGGBB image in place.
func BlurARGB(p *pixbuf.Packed, radius float64) {
	if radius <= 0 {
		return
	}
	img := pixbuf.Unpack[pixel.RGBA](p)
	Blur(img, radius)
	i := 0
	for px := range img.Chunked() {
		p.Pix[i] = pixel.Pack(px)
		i++
	}
}

// blurHorizontal convolves rows [y0, y1) of src with kernel, clamping at
// the left and right edges, and writes unrounded sums to dst.
func blurHorizontal(src []byte, dst []float32, w, c, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	stride := w * c
	for y := y0; y < y1; y++ {
		row := src[y*stride : (y+1)*stride]
		out := dst[y*stride : (y+1)*stride]
		for x := range w {
			for ch := range c {
				var sum float32
				for k, weight := range kernel {
					kx := clampInt(x+k-half, 0, w-1)
					sum += float32(row[kx*c+ch]) * weight
				}
				out[x*c+ch] = sum
			}
		}
	}
}

// blurVertical computes rows [y0, y1) of dst by convolving the columns of
// src with kernel, clamping at the top and bottom edges.
func blurVertical(src []float32, dst []byte, w, h, c, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	stride := w * c
	for y := y0; y < y1; y++ {
		out := dst[y*stride : (y+1)*stride]
		for i := range stride {
			var sum float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				sum += src[ky*stride+i] * weight
			}
			out[i] = clampUint8(sum)
		}
	}
}

// floatBuffer wraps a slice so sync.Pool stores a pointer.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// maxPooledBuffer bounds the buffers kept for reuse (64MB of float32).
const maxPooledBuffer = 16 * 1024 * 1024

// getTempBuffer returns a buffer of exactly size elements. Its contents are
// unspecified.
func getTempBuffer(size int) []float32 {
	fb := tempBufferPool.Get().(*floatBuffer) //nolint:errcheck // pool only holds *floatBuffer
	if len(fb.data) < size {
		tempBufferPool.Put(fb)
		return make([]float32, size)
	}
	return fb.data[:size]
}

func putTempBuffer(buf []float32) {
	if cap(buf) <= maxPooledBuffer {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// clampUint8 rounds v to the nearest byte, saturating.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
