package scale

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// ErrInvalidSize is returned when a requested size is not positive.
var ErrInvalidSize = errors.New("scale: invalid size")

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// Nearest scales src to width x height by nearest neighbor. Destination
// pixel x samples source column floor((x+0.5)*srcWidth/width), and likewise
// for rows. Alpha needs no special handling.
func Nearest[P pixel.Pixel](src pixbuf.View[P], width, height int) (*pixbuf.Image[P], error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	c := pixel.Channels[P]()
	sw, sh := src.Width(), src.Height()

	cols := make([]int, width)
	for x := range cols {
		cols[x] = min((2*x+1)*sw/(2*width), sw-1) * c
	}

	dst := pixbuf.Alloc[P](width, height)
	for y := range height {
		srow := src.Row(min((2*y+1)*sh/(2*height), sh-1))
		drow := dst.Row(y)
		for x, sx := range cols {
			copy(drow[x*c:x*c+c], srow[sx:sx+c])
		}
	}
	return dst, nil
}
