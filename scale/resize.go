package scale

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// Filter selects the convolution kernel used by [Resize].
type Filter uint8

const (
	// FilterNearest is nearest neighbor.
	FilterNearest Filter = iota
	// FilterBox averages the covered source pixels. Slightly blurry.
	FilterBox
	// FilterBilinear is linear interpolation. Rather fuzzy.
	FilterBilinear
	// FilterHamming is as fast as bilinear and about as sharp as bicubic
	// when downscaling. Not recommended for upscaling.
	FilterHamming
	// FilterCatmullRom is a bicubic Catmull-Rom spline.
	FilterCatmullRom
	// FilterMitchell is the Mitchell-Netravali bicubic filter.
	FilterMitchell
	// FilterLanczos3 is Lanczos resampling with a = 3. The sharpest.
	FilterLanczos3
)

var filterNames = [...]string{
	FilterNearest:    "nearest",
	FilterBox:        "box",
	FilterBilinear:   "bilinear",
	FilterHamming:    "hamming",
	FilterCatmullRom: "catmullrom",
	FilterMitchell:   "mitchell",
	FilterLanczos3:   "lanczos3",
}

// String returns the lowercase filter name accepted by [ParseFilter].
func (f Filter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return fmt.Sprintf("Filter(%d)", uint8(f))
}

// ParseFilter looks a filter up by name, ignoring case.
func ParseFilter(name string) (Filter, error) {
	for i, n := range filterNames {
		if strings.EqualFold(n, name) {
			return Filter(i), nil // #nosec G115 -- bounded by len(filterNames)
		}
	}
	return 0, fmt.Errorf("scale: unknown filter %q", name)
}

func (f Filter) kernel() imaging.ResampleFilter {
	switch f {
	case FilterBox:
		return imaging.Box
	case FilterBilinear:
		return imaging.Linear
	case FilterHamming:
		return imaging.Hamming
	case FilterCatmullRom:
		return imaging.CatmullRom
	case FilterMitchell:
		return imaging.MitchellNetravali
	case FilterLanczos3:
		return imaging.Lanczos
	default:
		return imaging.NearestNeighbor
	}
}

// Resize scales src to width x height with filter. If exactly one of width
// and height is zero it is derived from the other, keeping the aspect ratio.
func Resize[P pixel.Pixel](src pixbuf.View[P], width, height int, filter Filter) (*pixbuf.Image[P], error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	pixbuf.Logger().Debug("scale: resize",
		"from", fmt.Sprintf("%dx%d", src.Width(), src.Height()),
		"to", fmt.Sprintf("%dx%d", width, height),
		"filter", filter)
	out := imaging.Resize(pixbuf.StdImage(src), width, height, filter.kernel())
	return pixbuf.FromImage[P](out)
}

// Interpolate scales src to width x height with one of the
// golang.org/x/image/draw interpolators, such as draw.BiLinear or
// draw.CatmullRom.
func Interpolate[P pixel.Pixel](src pixbuf.View[P], width, height int, interp draw.Interpolator) (*pixbuf.Image[P], error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	r := image.Rect(0, 0, width, height)
	var dst draw.Image
	if pixel.Channels[P]() == 1 {
		dst = image.NewGray(r)
	} else {
		dst = image.NewNRGBA(r)
	}
	in := pixbuf.StdImage(src)
	interp.Scale(dst, r, in, in.Bounds(), draw.Src, nil)
	return pixbuf.FromImage[P](dst)
}

// Fit returns the largest size with the aspect ratio of width x height that
// fits in maxWidth x maxHeight. Sizes that already fit are returned as is.
// Neither dimension drops below 1.
func Fit(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	if maxWidth*height <= maxHeight*width {
		return maxWidth, max(1, height*maxWidth/width)
	}
	return max(1, width*maxHeight/height), maxHeight
}
